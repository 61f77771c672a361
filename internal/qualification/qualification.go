package qualification

import "strings"

// Tag is one entry of the closed qualification vocabulary used across
// scraped records and user profiles.
type Tag string

const (
	Tag10th         Tag = "10TH"
	Tag12th         Tag = "12TH"
	TagGraduate     Tag = "GRADUATE"
	TagBTech        Tag = "B.TECH"
	TagPostGraduate Tag = "POST_GRADUATE"
	TagDiploma      Tag = "DIPLOMA"
	TagAny          Tag = "ANY"
	TagAnyDegree    Tag = "ANY_DEGREE"
)

// Hierarchy orders credential levels from lowest to highest. Holding a
// later tag implies holding every earlier one.
var Hierarchy = []Tag{Tag10th, Tag12th, TagGraduate, TagBTech, TagPostGraduate}

type keywordGroup struct {
	tag      Tag
	keywords []string
}

// keywordGroups is evaluated in order; the order determines the order of
// tags in the classifier output.
var keywordGroups = []keywordGroup{
	{Tag10th, []string{"10th", "matric", "ssc"}},
	{Tag12th, []string{"12th", "hsc", "intermediate"}},
	{TagBTech, []string{"b.tech", "b.e", "engineering"}},
	{TagGraduate, []string{"degree", "graduate"}},
	{TagPostGraduate, []string{"pg", "post graduate", "mba"}},
	{TagDiploma, []string{"diploma"}},
}

// Classify maps free-text qualification descriptions to tags via substring
// keyword matching. Several tags can match at once since notifications
// routinely list multiple accepted qualifications. Unknown or empty text
// yields [ANY].
func Classify(text string) []Tag {
	lower := strings.ToLower(text)
	var tags []Tag
	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, g.tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		return []Tag{TagAny}
	}
	return tags
}

// Closure expands a set of held tags into the full set of implied tags per
// the Hierarchy: a B.TECH holder is also 10TH, 12TH and GRADUATE qualified.
// Tags outside the hierarchy (DIPLOMA, ANY) only imply themselves.
func Closure(tags []Tag) map[Tag]bool {
	implied := make(map[Tag]bool, len(Hierarchy))
	for _, t := range tags {
		implied[t] = true
		for i, h := range Hierarchy {
			if h != t {
				continue
			}
			for _, lower := range Hierarchy[:i] {
				implied[lower] = true
			}
			break
		}
	}
	return implied
}

// displayLabels maps the fixed form labels shown to users onto tags.
var displayLabels = map[string]Tag{
	"10th":          Tag10th,
	"12th":          Tag12th,
	"Diploma":       TagDiploma,
	"Graduate":      TagGraduate,
	"B.Tech":        TagBTech,
	"Post Graduate": TagPostGraduate,
}

// ParseDisplayLabel validates a user-selected qualification label.
func ParseDisplayLabel(label string) (Tag, bool) {
	t, ok := displayLabels[strings.TrimSpace(label)]
	return t, ok
}

// DisplayLabels lists the selectable labels in hierarchy order for form
// rendering.
func DisplayLabels() []string {
	return []string{"10th", "12th", "Diploma", "Graduate", "B.Tech", "Post Graduate"}
}
