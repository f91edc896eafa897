package events

import (
	"regexp"
	"strings"

	"eventboard/internal/domain"
)

var (
	// A tag is "#key" or "#key:value"; the value run stops at the next
	// whitespace or '#'. An empty value run degrades to a boolean flag.
	tagPattern     = regexp.MustCompile(`#(\w+)(?::([^#\s]+))?`)
	commentPattern = regexp.MustCompile(`//.*$`)
	spaceRun       = regexp.MustCompile(`\s{2,}`)
)

// ParseTags scans text left to right for tag tokens and collects them
// into an ordered mapping, last occurrence of a key winning.
func ParseTags(text string) domain.Tags {
	var tags domain.Tags
	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		tags.Set(m[1], strings.TrimSpace(m[2]))
	}
	return tags
}

// StripTags removes every tag token from text and collapses the leftover
// whitespace runs.
func StripTags(text string) string {
	return collapse(tagPattern.ReplaceAllString(text, ""))
}

// ParseSummary splits an event summary into its display subject and tag
// mapping. Tags are scanned over the whole summary, including a trailing
// "// comment"; the subject has both the comment and the tag tokens
// removed.
func ParseSummary(summary string) (string, domain.Tags) {
	tags := ParseTags(summary)
	subject := commentPattern.ReplaceAllString(summary, "")
	subject = StripTags(subject)
	return subject, tags
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
