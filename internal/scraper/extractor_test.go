package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarkarimatch/job-board/internal/qualification"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractVacancyStrategies(t *testing.T) {
	e := NewExtractor(DefaultRules())

	// strategy 1: Total Vacancy in body wins over everything else
	doc := docFrom(t, `<html><body><p>Total Vacancy: 1,200</p><p>50 Posts</p></body></html>`)
	rec := e.Extract(doc, Stub{ID: "0", PostName: "Clerk 99 Posts", DetailURL: "http://x/d"})
	assert.Equal(t, "1,200", rec.Metadata.TotalVacancy)

	// strategy 2: number in the post title
	doc = docFrom(t, `<html><body><p>nothing useful</p></body></html>`)
	rec = e.Extract(doc, Stub{ID: "0", PostName: "Clerk 99 Posts", DetailURL: "http://x/d"})
	assert.Equal(t, "99", rec.Metadata.TotalVacancy)
	assert.Equal(t, "Clerk 99 Posts | 99 Posts", rec.DisplayTitle)

	// strategy 3: "N Posts" anywhere in the body
	doc = docFrom(t, `<html><body><p>Recruitment for 750 posts announced</p></body></html>`)
	rec = e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: "http://x/d"})
	assert.Equal(t, "750", rec.Metadata.TotalVacancy)

	// nothing matches
	doc = docFrom(t, `<html><body><p>no numbers here</p></body></html>`)
	rec = e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: "http://x/d"})
	assert.Equal(t, "Unknown", rec.Metadata.TotalVacancy)
	assert.Equal(t, "Clerk | Unknown Posts", rec.DisplayTitle)
}

func TestExtractAgeLimitFromContainer(t *testing.T) {
	e := NewExtractor(DefaultRules())
	doc := docFrom(t, `<html><body><p>Age Limit: candidates must be 21-30 years old</p></body></html>`)
	rec := e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: "http://x/d"})
	assert.Equal(t, 21, rec.MinAge)
	assert.Equal(t, 30, rec.MaxAge)
}

func TestExtractAgeLimitSiblingFallback(t *testing.T) {
	// bare header cell, range lives in the sibling cell
	e := NewExtractor(DefaultRules())
	doc := docFrom(t, `<html><body><table><tr><td>Age Limit</td><td>18-27 years</td></tr></table></body></html>`)
	rec := e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: "http://x/d"})
	assert.Equal(t, 18, rec.MinAge)
	assert.Equal(t, 27, rec.MaxAge)
}

func TestExtractAgeLimitNextRowFallback(t *testing.T) {
	// header row on its own, range in the cell of the following row
	e := NewExtractor(DefaultRules())
	doc := docFrom(t, `<html><body><table><tr><td>Age Limit</td></tr><tr><td>Max 35 years</td></tr></table></body></html>`)
	rec := e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: "http://x/d"})
	assert.Equal(t, 18, rec.MinAge)
	assert.Equal(t, 35, rec.MaxAge)
}

func TestExtractAgeLimitMissingMarker(t *testing.T) {
	e := NewExtractor(DefaultRules())
	doc := docFrom(t, `<html><body><p>no age information</p></body></html>`)
	rec := e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: "http://x/d"})
	assert.Equal(t, 18, rec.MinAge)
	assert.Equal(t, 60, rec.MaxAge)
}

func TestExtractIgnoresScriptText(t *testing.T) {
	e := NewExtractor(DefaultRules())
	doc := docFrom(t, `<html><body><script>{"totalVacancy":"Total Vacancy: 9"}</script><p>plain page</p></body></html>`)
	rec := e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: "http://x/d"})
	assert.Equal(t, "Unknown", rec.Metadata.TotalVacancy)
}

func TestExtractQualificationTags(t *testing.T) {
	e := NewExtractor(DefaultRules())
	doc := docFrom(t, `<html><body></body></html>`)

	rec := e.Extract(doc, Stub{ID: "0", PostName: "JE", QualificationText: "10th pass, B.Tech preferred", DetailURL: "http://x/d"})
	assert.Equal(t, []qualification.Tag{qualification.Tag10th, qualification.TagBTech}, rec.QualificationCodes)
	assert.Equal(t, []qualification.Tag{qualification.Tag10th, qualification.TagBTech}, rec.Qualification)

	// unclassifiable text becomes an open notification
	rec = e.Extract(doc, Stub{ID: "0", PostName: "JE", QualificationText: "see notification", DetailURL: "http://x/d"})
	assert.Equal(t, []qualification.Tag{qualification.TagAny}, rec.QualificationCodes)
	assert.Equal(t, []qualification.Tag{qualification.TagAnyDegree}, rec.Qualification)
}

func TestLinkClassification(t *testing.T) {
	e := NewExtractor(DefaultRules())
	detail := "http://x/d"
	doc := docFrom(t, `<html><body>
		<a href="https://web.whatsapp.com/jobs">Click here</a>
		<a href="https://telegram.org/ch">Click here</a>
		<a href="https://www.freejobalert.com/other">Click here</a>
		<a href="https://gov.example.org/notice.pdf">Click Here</a>
		<a href="https://gov.example.org/another.pdf">Click here</a>
		<a href="https://apply.example.org/form">click here</a>
		<a href="https://late.example.org/ignored">Click here</a>
		<a href="https://not-a-candidate.example.org">Apply online</a>
	</body></html>`)
	rec := e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: detail})
	assert.Equal(t, "https://gov.example.org/notice.pdf", rec.NotificationLink)
	assert.Equal(t, "https://apply.example.org/form", rec.ApplyLink)
}

func TestLinkClassificationRelativeAndDefaults(t *testing.T) {
	e := NewExtractor(DefaultRules())
	detail := "http://x/d"

	// root-relative hrefs resolve against the source origin, and since the
	// origin is deny-listed they are then skipped
	doc := docFrom(t, `<html><body><a href="/jobs/123.pdf">Click here</a></body></html>`)
	rec := e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: detail})
	assert.Equal(t, detail, rec.NotificationLink)
	assert.Equal(t, detail, rec.ApplyLink)

	// no candidates at all: both roles default to the detail URL
	doc = docFrom(t, `<html><body><p>no links</p></body></html>`)
	rec = e.Extract(doc, Stub{ID: "0", PostName: "Clerk", DetailURL: detail})
	assert.Equal(t, detail, rec.NotificationLink)
	assert.Equal(t, detail, rec.ApplyLink)
}

func TestDefaultRecord(t *testing.T) {
	e := NewExtractor(DefaultRules())
	rec := e.DefaultRecord(Stub{ID: "3", PostName: "Clerk", QualificationText: "Degree", DetailURL: "http://x/d"})
	assert.Equal(t, "3", rec.ID)
	assert.Equal(t, 18, rec.MinAge)
	assert.Equal(t, 60, rec.MaxAge)
	assert.Equal(t, "Unknown", rec.Metadata.TotalVacancy)
	assert.Equal(t, "http://x/d", rec.ApplyLink)
	assert.Equal(t, "http://x/d", rec.NotificationLink)
	assert.Equal(t, []qualification.Tag{qualification.TagAnyDegree}, rec.Qualification)
	assert.Equal(t, "Clerk | Unknown Posts", rec.DisplayTitle)
}

func TestRecordsCarryIndependentRelaxationMaps(t *testing.T) {
	e := NewExtractor(DefaultRules())
	doc := docFrom(t, `<html><body></body></html>`)
	a := e.Extract(doc, Stub{ID: "0", PostName: "A", DetailURL: "http://x/a"})
	b := e.Extract(docFrom(t, `<html><body></body></html>`), Stub{ID: "1", PostName: "B", DetailURL: "http://x/b"})
	a.CategoryRelaxations["OBC"] = 99
	assert.Equal(t, 3, b.CategoryRelaxations["OBC"])
}
