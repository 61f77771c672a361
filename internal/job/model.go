package job

import "github.com/sarkarimatch/job-board/internal/qualification"

// DefaultRelaxations is the category relaxation table attached to a record
// when the notification does not state its own.
func DefaultRelaxations() map[string]int {
	return map[string]int{"OBC": 3, "SC": 5, "ST": 5}
}

// Metadata carries extraction by-products that are displayed but never
// matched on.
type Metadata struct {
	TotalVacancy   string `json:"total_vacancy"`
	PreviousCutoff string `json:"previous_cutoff"`
}

// Record is one scraped job notification. Records are immutable once
// persisted; per-user derived fields (effective max age, relaxation
// applied) live on eligibility results, never here.
//
// MinAge > MaxAge can occur on messy source pages and is deliberately not
// repaired: the matching engine treats such a record as age-ineligible for
// everyone.
type Record struct {
	ID                  string              `json:"id"`
	PostName            string              `json:"post_name"`
	DisplayTitle        string              `json:"display_title"`
	Slug                string              `json:"slug"`
	QualificationText   string              `json:"original_qual_text"`
	Qualification       []qualification.Tag `json:"qualification"`
	QualificationCodes  []qualification.Tag `json:"qualification_codes"`
	MinAge              int                 `json:"min_age"`
	MaxAge              int                 `json:"max_age"`
	DetailURL           string              `json:"detail_url"`
	ApplyLink           string              `json:"apply_link"`
	NotificationLink    string              `json:"notification_link"`
	CategoryRelaxations map[string]int      `json:"category_relaxations"`
	Metadata            Metadata            `json:"metadata"`
}
