package eligibility

import (
	"fmt"
	"time"

	"github.com/sarkarimatch/job-board/internal/job"
	"github.com/sarkarimatch/job-board/internal/qualification"
)

// Engine evaluates user profiles against scraped job records. It holds no
// mutable state and is safe to share across requests.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Age computes completed years between dob and today, counting the year
// down by one when today's month/day falls before the birthday.
func Age(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// relaxationFor looks up the category's year bonus in the record's own
// relaxation table. There is a single canonical lookup keyed by category
// code; an absent category means no relaxation.
func relaxationFor(cat Category, rules map[string]int) int {
	return rules[string(cat)]
}

// Evaluate produces a full verdict for one profile against one record.
// The record is read-only: every derived number lands on the Result. It
// never fails for a well-formed pair; boundary validation happens before
// the engine is called.
func (e *Engine) Evaluate(p Profile, rec job.Record, mode Mode, today time.Time) Result {
	userAge := Age(p.DOB, today)
	relaxation := relaxationFor(p.Category, rec.CategoryRelaxations)
	effectiveMax := rec.MaxAge + relaxation

	res := Result{
		Eligible:          true,
		JobID:             rec.ID,
		JobTitle:          rec.PostName,
		UserAge:           userAge,
		EffectiveMaxAge:   effectiveMax,
		RelaxationApplied: relaxation,
	}

	switch {
	case userAge < rec.MinAge:
		res.Eligible = false
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("Ineligible: Age %d is below minimum age %d.", userAge, rec.MinAge))
	case userAge > effectiveMax:
		res.Eligible = false
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("Ineligible: Age %d exceeds limit %d (%d + %d %s relaxation).",
				userAge, effectiveMax, rec.MaxAge, relaxation, p.Category))
	default:
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("Eligible: Age %d is within limit %d (%d + %d %s relaxation).",
				userAge, effectiveMax, rec.MaxAge, relaxation, p.Category))
	}

	if qualifies(p.Tags, rec.Qualification) {
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("Eligible: Qualification matches %s.", tagList(rec.Qualification)))
	} else if mode == Strict {
		res.Eligible = false
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("Ineligible: Job requires %s, user holds %s.",
				tagList(rec.Qualification), tagList(p.Tags)))
	} else {
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("Note: Job requires %s, user holds %s. Verification needed.",
				tagList(rec.Qualification), tagList(p.Tags)))
	}

	return res
}

// MatchBatch filters a stored batch down to the records the profile
// qualifies for. Each returned Match carries its own copy of the record
// plus the per-user annotations, so repeated matching calls with different
// profiles never contaminate each other or the stored batch.
func (e *Engine) MatchBatch(p Profile, recs []job.Record, mode Mode, today time.Time) []Match {
	var matches []Match
	for _, rec := range recs {
		res := e.Evaluate(p, rec, mode, today)
		if !res.Eligible {
			continue
		}
		matches = append(matches, Match{
			Record:            rec,
			EffectiveMaxAge:   res.EffectiveMaxAge,
			RelaxationApplied: res.RelaxationApplied,
		})
	}
	return matches
}

// qualifies reports whether any required tag is covered by the implied
// closure of the user's tags. ANY_DEGREE on the record is an open
// notification and always passes.
func qualifies(userTags []qualification.Tag, required []qualification.Tag) bool {
	closure := qualification.Closure(userTags)
	for _, req := range required {
		if req == qualification.TagAnyDegree || req == qualification.TagAny {
			return true
		}
		if closure[req] {
			return true
		}
	}
	return false
}

func tagList(tags []qualification.Tag) string {
	if len(tags) == 0 {
		return "none"
	}
	s := ""
	for i, t := range tags {
		if i > 0 {
			s += "/"
		}
		s += string(t)
	}
	return s
}
