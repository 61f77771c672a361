package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// anchor labels are unreliable on notification pages, so link roles are
// assigned positionally: among the "click here" anchors surviving the
// deny-list, the first document file is the official notification and the
// first non-document link is the apply/official-site link.
type linkClassifier struct {
	rules Rules
}

type classifiedLinks struct {
	NotificationLink string
	ApplyLink        string
}

// Classify walks every hyperlink on the detail page in document order and
// assigns the notification and apply roles. Roles that stay unfilled
// default to the detail page's own URL.
func (lc linkClassifier) Classify(doc *goquery.Document, detailURL string) classifiedLinks {
	out := classifiedLinks{NotificationLink: detailURL, ApplyLink: detailURL}
	notificationSet := false

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "/") {
			href = lc.rules.SourceOrigin + href
		}
		lower := strings.ToLower(href)
		for _, deny := range lc.rules.DenyHosts {
			if strings.Contains(lower, deny) {
				return
			}
		}
		if !strings.EqualFold(strings.TrimSpace(a.Text()), "click here") {
			return
		}
		if strings.Contains(lower, ".pdf") {
			if !notificationSet {
				out.NotificationLink = href
				notificationSet = true
			}
			return
		}
		if out.ApplyLink == detailURL {
			out.ApplyLink = href
		}
	})
	return out
}
