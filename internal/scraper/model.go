package scraper

import "github.com/sarkarimatch/job-board/internal/textutil"

// Stub is a partial job parsed from one listing row. The detail page is
// fetched later to fill in the remaining record fields.
type Stub struct {
	ID                string `json:"id"`
	PostName          string `json:"post_name"`
	QualificationText string `json:"original_qual_text"`
	DetailURL         string `json:"detail_url"`
}

// Rules holds the extraction defaults and site knowledge the extractor is
// constructed with. Treated as immutable after construction.
type Rules struct {
	DefaultMinAge int
	DefaultMaxAge int
	// SourceOrigin prefixes root-relative hrefs found on detail pages.
	SourceOrigin string
	// DenyHosts are substrings of hrefs that are never selected as
	// notification or apply links (messaging apps, app stores, the
	// listing site itself).
	DenyHosts []string
	// Relaxations is the category relaxation table stamped onto every
	// record of the batch.
	Relaxations map[string]int
}

// DefaultRules returns the rule set for the freejobalert listing source.
func DefaultRules() Rules {
	return Rules{
		DefaultMinAge: textutil.DefaultMinAge,
		DefaultMaxAge: textutil.DefaultMaxAge,
		SourceOrigin:  "https://www.freejobalert.com",
		DenyHosts:     []string{"telegram", "whatsapp", "play.google", "arattai", "freejobalert.com"},
		Relaxations:   map[string]int{"OBC": 3, "SC": 5, "ST": 5},
	}
}
