package todo

import (
	"reflect"
	"testing"
)

func TestExtractTags(t *testing.T) {
	cases := []struct {
		task string
		want []string
	}{
		{"buy milk #errand #home", []string{"errand", "home"}},
		{"#first thing in the morning", []string{"first"}},
		{"mixed #a text #b more #a", []string{"a", "b", "a"}},
		{"punctuation sticks #urgent!", []string{"urgent"}},
		{"underscores and digits #follow_up2", []string{"follow_up2"}},
		{"a bare # is not a tag", []string{}},
		{"no tags at all", []string{}},
		{"", []string{}},
	}
	for _, tc := range cases {
		got := ExtractTags(tc.task)
		if got == nil {
			t.Errorf("ExtractTags(%q) returned nil, want %v", tc.task, tc.want)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ExtractTags(%q) = %v, want %v", tc.task, got, tc.want)
		}
	}
}
