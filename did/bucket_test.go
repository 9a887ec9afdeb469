package did

import (
	"testing"
	"time"
)

func TestBucketFor(t *testing.T) {
	// Both anchors fall in the week of Monday 2024-01-08.
	monday := time.Date(2024, time.January, 8, 15, 0, 0, 0, time.UTC)
	thursday := time.Date(2024, time.January, 11, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		now  time.Time
		want Bucket
	}{
		{"midnight today", time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), monday, BucketToday},
		{"late today", time.Date(2024, time.January, 8, 23, 59, 0, 0, time.UTC), monday, BucketToday},
		{"yesterday beats last week", time.Date(2024, time.January, 7, 12, 0, 0, 0, time.UTC), monday, BucketYesterday},
		{"eight days ago is older", time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC), monday, BucketOlder},
		{"yesterday mid-week", time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC), thursday, BucketYesterday},
		{"earlier this week", time.Date(2024, time.January, 9, 8, 0, 0, 0, time.UTC), thursday, BucketThisWeek},
		{"monday starts the week", time.Date(2024, time.January, 8, 8, 0, 0, 0, time.UTC), thursday, BucketThisWeek},
		{"later this week", time.Date(2024, time.January, 12, 8, 0, 0, 0, time.UTC), thursday, BucketThisWeek},
		{"sunday is last week", time.Date(2024, time.January, 7, 12, 0, 0, 0, time.UTC), thursday, BucketLastWeek},
		{"start of last week", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), thursday, BucketLastWeek},
		{"before last week", time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC), thursday, BucketOlder},
		{"read in the viewer's calendar", time.Date(2024, time.January, 10, 23, 30, 0, 0, time.FixedZone("PST", -8*3600)), thursday, BucketToday},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BucketFor(tc.t, tc.now); got != tc.want {
				t.Errorf("BucketFor(%v, %v) = %q, want %q", tc.t, tc.now, got, tc.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		day  time.Time
		want time.Time
	}{
		{time.Date(2024, time.January, 8, 15, 0, 0, 0, time.UTC), time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, time.January, 11, 15, 0, 0, 0, time.UTC), time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, time.January, 7, 15, 0, 0, 0, time.UTC), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := startOfWeek(tc.day); !got.Equal(tc.want) {
			t.Errorf("startOfWeek(%v) = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestBuckets(t *testing.T) {
	want := []Bucket{BucketToday, BucketYesterday, BucketThisWeek, BucketLastWeek, BucketOlder}
	got := Buckets()
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected bucket %d to be %q, got %q", i, want[i], got[i])
		}
	}
	for _, bucket := range got {
		if bucket.Label() == "" {
			t.Errorf("expected a label for bucket %q", bucket)
		}
	}
}
