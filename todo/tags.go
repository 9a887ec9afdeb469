package todo

import "regexp"

var tagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractTags returns the hashtag words in task in appearance order,
// duplicates included. The result is never nil so tags always persist
// as a JSON array.
func ExtractTags(task string) []string {
	matches := tagPattern.FindAllStringSubmatch(task, -1)
	tags := make([]string, 0, len(matches))
	for _, match := range matches {
		tags = append(tags, match[1])
	}
	return tags
}
