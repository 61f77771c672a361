package eligibility

import (
	"strings"
	"time"

	"github.com/sarkarimatch/job-board/internal/job"
	"github.com/sarkarimatch/job-board/internal/qualification"
)

// Category is a reservation category code.
type Category string

const (
	CategoryGen Category = "GEN"
	CategoryOBC Category = "OBC"
	CategorySC  Category = "SC"
	CategoryST  Category = "ST"
)

// ParseCategory validates a raw category code from a form or query string.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryGen:
		return CategoryGen, true
	case CategoryOBC:
		return CategoryOBC, true
	case CategorySC:
		return CategorySC, true
	case CategoryST:
		return CategoryST, true
	}
	return "", false
}

// Profile is one applicant query.
type Profile struct {
	DOB      time.Time
	Category Category
	Tags     []qualification.Tag
}

// Mode selects how a qualification mismatch is treated.
type Mode int

const (
	// Strict rejects a record when no required tag intersects the
	// applicant's implied qualifications.
	Strict Mode = iota
	// Advisory downgrades a qualification mismatch to a note; age remains
	// a hard gate.
	Advisory
)

// ParseMode maps a mode query parameter, defaulting to Strict.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "advisory") {
		return Advisory
	}
	return Strict
}

// Result is the verdict for one (profile, record) evaluation. Reasons are
// ordered: age verdict first, qualification verdict second.
type Result struct {
	Eligible          bool     `json:"eligible"`
	Reasons           []string `json:"reasons"`
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	UserAge           int      `json:"user_age"`
	EffectiveMaxAge   int      `json:"effective_max_age"`
	RelaxationApplied int      `json:"relaxation_applied"`
}

// Match pairs an eligible record with the per-user annotations computed
// during evaluation. Record is a copy; the stored batch is never mutated.
type Match struct {
	job.Record
	EffectiveMaxAge   int `json:"effective_max_age"`
	RelaxationApplied int `json:"relaxation_applied"`
}
