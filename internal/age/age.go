package age

import "time"

// AgeData computes the display age of then relative to now and whether
// timing data exists. Future timestamps clamp to zero.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}

	age := now.Sub(then)
	if age < 0 {
		age = 0
	}
	return age, true
}
