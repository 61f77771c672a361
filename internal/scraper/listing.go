package scraper

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/sarkarimatch/job-board/internal/textutil"
)

// ParseListing extracts job stubs from the listing page. Notification rows
// live in tables of class "lattbl"; a usable row has at least four cells:
// post name in the third, qualification text in the fourth and the detail
// link in the last. Rows beyond limit are ignored. Scraped free text is
// run through a strict sanitiser before it can reach storage or templates.
func ParseListing(doc *goquery.Document, limit int) []Stub {
	sanitise := bluemonday.StrictPolicy()
	var stubs []Stub
	doc.Find("table.lattbl tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if limit > 0 && len(stubs) >= limit {
			return false
		}
		cols := row.Find("td")
		if cols.Length() < 4 {
			return true
		}
		href, ok := cols.Last().Find("a[href]").First().Attr("href")
		if !ok {
			return true
		}
		stubs = append(stubs, Stub{
			ID:                strconv.Itoa(len(stubs)),
			PostName:          textutil.NormalizeWhitespace(sanitise.Sanitize(cols.Eq(2).Text())),
			QualificationText: textutil.NormalizeWhitespace(sanitise.Sanitize(cols.Eq(3).Text())),
			DetailURL:         href,
		})
		return true
	})
	return stubs
}
