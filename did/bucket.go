package did

import "time"

// Bucket is a recency category in the activity feed.
type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketYesterday Bucket = "yesterday"
	BucketThisWeek  Bucket = "this-week"
	BucketLastWeek  Bucket = "last-week"
	BucketOlder     Bucket = "older"
)

// Buckets returns every bucket in display order.
func Buckets() []Bucket {
	return []Bucket{BucketToday, BucketYesterday, BucketThisWeek, BucketLastWeek, BucketOlder}
}

// Label returns the bucket's display heading.
func (b Bucket) Label() string {
	switch b {
	case BucketToday:
		return "Today"
	case BucketYesterday:
		return "Yesterday"
	case BucketThisWeek:
		return "This Week"
	case BucketLastWeek:
		return "Last Week"
	default:
		return "Older"
	}
}

// BucketFor classifies a timestamp relative to now. Every timestamp lands
// in exactly one bucket, checked in display order: the calendar date of
// now, the date before it, the current Monday-started week, the week
// before that, and everything earlier. The timestamp is read in now's
// location so that "same calendar date" means the viewer's calendar.
func BucketFor(t, now time.Time) Bucket {
	day := dateOf(t.In(now.Location()))
	today := dateOf(now)

	switch {
	case day.Equal(today):
		return BucketToday
	case day.Equal(today.AddDate(0, 0, -1)):
		return BucketYesterday
	}

	weekStart := startOfWeek(today)
	switch {
	case !day.Before(weekStart) && day.Before(weekStart.AddDate(0, 0, 7)):
		return BucketThisWeek
	case !day.Before(weekStart.AddDate(0, 0, -7)) && day.Before(weekStart):
		return BucketLastWeek
	}
	return BucketOlder
}

// Group is a bucket together with its items, newest first.
type Group struct {
	Bucket Bucket
	Items  []Item
}

// GroupItems splits a merged feed into display groups. Buckets with no
// items are omitted; within a group the items keep the order they arrive
// in, so callers pass an already sorted feed.
func GroupItems(items []Item, now time.Time) []Group {
	byBucket := make(map[Bucket][]Item)
	for _, item := range items {
		bucket := BucketFor(item.CompletedAt, now)
		byBucket[bucket] = append(byBucket[bucket], item)
	}

	groups := make([]Group, 0, len(byBucket))
	for _, bucket := range Buckets() {
		if bucketed := byBucket[bucket]; len(bucketed) > 0 {
			groups = append(groups, Group{Bucket: bucket, Items: bucketed})
		}
	}
	return groups
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday on or before t's date.
func startOfWeek(t time.Time) time.Time {
	day := dateOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
