package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gosimple/slug"
	"golang.org/x/net/html"

	"github.com/sarkarimatch/job-board/internal/job"
	"github.com/sarkarimatch/job-board/internal/qualification"
	"github.com/sarkarimatch/job-board/internal/textutil"
)

var (
	totalVacancyRe = regexp.MustCompile(`(?i)Total Vacancy\s*[:\-]?\s*([\d,]+)`)
	postsRe        = regexp.MustCompile(`(?i)(\d+)\s*Posts?`)
	ageLimitRe     = regexp.MustCompile(`(?i)Age Limit`)
)

// Extractor recovers the typed fields of a job record from a fetched
// detail document using ordered fallback heuristics. A missed heuristic
// resolves to the field's default, never to an error.
type Extractor struct {
	rules Rules
	links linkClassifier
}

func NewExtractor(rules Rules) *Extractor {
	return &Extractor{rules: rules, links: linkClassifier{rules: rules}}
}

// vacancyStrategies are tried in order; the first non-empty result wins.
func (e *Extractor) vacancyStrategies(doc *goquery.Document, stub Stub) []func() string {
	return []func() string{
		// "Total Vacancy: 1,200" anywhere in the body
		func() string {
			if m := totalVacancyRe.FindStringSubmatch(doc.Text()); m != nil {
				return m[1]
			}
			return ""
		},
		// "750 Posts" in the post title
		func() string {
			if m := postsRe.FindStringSubmatch(stub.PostName); m != nil {
				return m[1]
			}
			return ""
		},
		// "750 Posts" anywhere in the body
		func() string {
			if m := postsRe.FindStringSubmatch(doc.Text()); m != nil {
				return m[1]
			}
			return ""
		},
	}
}

func (e *Extractor) extractVacancy(doc *goquery.Document, stub Stub) string {
	for _, strategy := range e.vacancyStrategies(doc, stub) {
		if v := strategy(); v != "" {
			return v
		}
	}
	return "Unknown"
}

// ownText returns the text held directly by the element, excluding child
// elements, so the innermost container of an "Age Limit" label is found
// rather than every ancestor whose subtree mentions it.
func ownText(s *goquery.Selection) string {
	var b strings.Builder
	for _, node := range s.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}

// extractAgeLimit locates the "Age Limit" marker and feeds the text of its
// structural container into the age-range parser. Containers too short to
// hold a real range (bare header cells) fall back to the next sibling or
// the nearest following table cell.
func (e *Extractor) extractAgeLimit(doc *goquery.Document) (int, int) {
	var marker *goquery.Selection
	doc.Find("body *").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if ageLimitRe.MatchString(ownText(s)) {
			marker = s
			return false
		}
		return true
	})
	if marker == nil {
		return e.rules.DefaultMinAge, e.rules.DefaultMaxAge
	}
	text := marker.Text()
	if len(strings.TrimSpace(text)) < 15 {
		if sib := marker.Next(); sib.Length() > 0 {
			text = sib.Text()
		} else if td := marker.Closest("tr").Next().Find("td").First(); td.Length() > 0 {
			text = td.Text()
		}
	}
	return textutil.ExtractAgeRange(text)
}

// recordTags maps classifier output onto the tag vocabulary stored on
// records: an unclassified text becomes an open ANY_DEGREE notification.
func recordTags(codes []qualification.Tag) []qualification.Tag {
	tags := make([]qualification.Tag, 0, len(codes))
	for _, c := range codes {
		if c == qualification.TagAny {
			tags = append(tags, qualification.TagAnyDegree)
			continue
		}
		tags = append(tags, c)
	}
	return tags
}

// Extract produces the complete record for one fetched detail document.
func (e *Extractor) Extract(doc *goquery.Document, stub Stub) job.Record {
	// script bodies (JSON-LD blobs in particular) pollute text searches
	doc.Find("script").Remove()

	vacancy := e.extractVacancy(doc, stub)
	minAge, maxAge := e.extractAgeLimit(doc)
	links := e.links.Classify(doc, stub.DetailURL)
	codes := qualification.Classify(stub.QualificationText)

	return job.Record{
		ID:                  stub.ID,
		PostName:            stub.PostName,
		DisplayTitle:        fmt.Sprintf("%s | %s Posts", stub.PostName, vacancy),
		Slug:                slug.Make(stub.PostName),
		QualificationText:   stub.QualificationText,
		Qualification:       recordTags(codes),
		QualificationCodes:  codes,
		MinAge:              minAge,
		MaxAge:              maxAge,
		DetailURL:           stub.DetailURL,
		ApplyLink:           links.ApplyLink,
		NotificationLink:    links.NotificationLink,
		CategoryRelaxations: copyRelaxations(e.rules.Relaxations),
		Metadata:            job.Metadata{TotalVacancy: vacancy, PreviousCutoff: "Data not available"},
	}
}

// DefaultRecord is the best-effort record produced when the detail page
// cannot be fetched or parsed at all.
func (e *Extractor) DefaultRecord(stub Stub) job.Record {
	return job.Record{
		ID:                  stub.ID,
		PostName:            stub.PostName,
		DisplayTitle:        fmt.Sprintf("%s | Unknown Posts", stub.PostName),
		Slug:                slug.Make(stub.PostName),
		QualificationText:   stub.QualificationText,
		Qualification:       []qualification.Tag{qualification.TagAnyDegree},
		QualificationCodes:  []qualification.Tag{qualification.TagAny},
		MinAge:              e.rules.DefaultMinAge,
		MaxAge:              e.rules.DefaultMaxAge,
		DetailURL:           stub.DetailURL,
		ApplyLink:           stub.DetailURL,
		NotificationLink:    stub.DetailURL,
		CategoryRelaxations: copyRelaxations(e.rules.Relaxations),
		Metadata:            job.Metadata{TotalVacancy: "Unknown", PreviousCutoff: "Data not available"},
	}
}

// each record gets its own relaxation map so batches stay independent of
// later rule edits
func copyRelaxations(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
