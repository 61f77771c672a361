package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultMinAge = 18
	DefaultMaxAge = 60
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	ageRangeRe   = regexp.MustCompile(`(\d{2})\s*-\s*(\d{2})`)
	ageMaxRe     = regexp.MustCompile(`(?i)Max.*?(\d{2})`)
)

// NormalizeWhitespace collapses runs of whitespace into a single space and
// trims leading/trailing whitespace.
func NormalizeWhitespace(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// ExtractAgeRange recovers an age bracket from free text. It tries a
// "NN-NN" range first, then a "Max NN" style upper bound, and falls back
// to the 18-60 default bracket. The first matching strategy wins.
func ExtractAgeRange(s string) (int, int) {
	if s == "" {
		return DefaultMinAge, DefaultMaxAge
	}
	if m := ageRangeRe.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		return min, max
	}
	if m := ageMaxRe.FindStringSubmatch(s); m != nil {
		max, _ := strconv.Atoi(m[1])
		return DefaultMinAge, max
	}
	return DefaultMinAge, DefaultMaxAge
}
