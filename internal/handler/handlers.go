package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"

	"github.com/sarkarimatch/job-board/internal/eligibility"
	"github.com/sarkarimatch/job-board/internal/job"
	"github.com/sarkarimatch/job-board/internal/qualification"
	"github.com/sarkarimatch/job-board/internal/server"
)

func IndexPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.Render(w, http.StatusOK, "index.html", map[string]interface{}{
			"Qualifications": qualification.DisplayLabels(),
			"Categories":     []string{"GEN", "OBC", "SC", "ST"},
		})
	}
}

// profileFromForm validates the raw form fields at the boundary; the
// engine only ever sees well-formed profiles.
func profileFromForm(dob, category, label string) (eligibility.Profile, error) {
	dobDate, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return eligibility.Profile{}, fmt.Errorf("invalid date of birth %q", dob)
	}
	cat, ok := eligibility.ParseCategory(category)
	if !ok {
		return eligibility.Profile{}, fmt.Errorf("unknown category %q", category)
	}
	tag, ok := qualification.ParseDisplayLabel(label)
	if !ok {
		return eligibility.Profile{}, fmt.Errorf("unknown qualification %q", label)
	}
	return eligibility.Profile{
		DOB:      dobDate,
		Category: cat,
		Tags:     []qualification.Tag{tag},
	}, nil
}

func MatchPageHandler(svr server.Server, jobRepo *job.Repository, engine *eligibility.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.Render(w, http.StatusBadRequest, "index.html", map[string]interface{}{
				"Error":          "unable to read form",
				"Qualifications": qualification.DisplayLabels(),
				"Categories":     []string{"GEN", "OBC", "SC", "ST"},
			})
			return
		}
		profile, err := profileFromForm(r.FormValue("dob"), r.FormValue("category"), r.FormValue("qualification"))
		if err != nil {
			svr.Render(w, http.StatusBadRequest, "index.html", map[string]interface{}{
				"Error":          err.Error(),
				"Qualifications": qualification.DisplayLabels(),
				"Categories":     []string{"GEN", "OBC", "SC", "ST"},
			})
			return
		}
		recs, err := svr.LoadJobs(jobRepo)
		if err != nil {
			svr.Log(err, "unable to load jobs batch")
			svr.Render(w, http.StatusInternalServerError, "index.html", map[string]interface{}{
				"Error":          "unable to load jobs, please retry",
				"Qualifications": qualification.DisplayLabels(),
				"Categories":     []string{"GEN", "OBC", "SC", "ST"},
			})
			return
		}
		mode := eligibility.ParseMode(r.FormValue("mode"))
		now := time.Now()
		matches := engine.MatchBatch(profile, recs, mode, now)
		svr.Render(w, http.StatusOK, "results.html", map[string]interface{}{
			"Jobs":    matches,
			"UserAge": eligibility.Age(profile.DOB, now),
			"Count":   len(matches),
		})
	}
}

func JobsAPIHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svr.LoadJobs(jobRepo)
		if err != nil {
			svr.Log(err, "unable to load jobs batch")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"count": len(recs), "jobs": recs})
	}
}

func MatchAPIHandler(svr server.Server, jobRepo *job.Repository, engine *eligibility.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		profile, err := profileFromForm(q.Get("dob"), q.Get("category"), q.Get("qualification"))
		if err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"status": "error", "error": err.Error()})
			return
		}
		recs, err := svr.LoadJobs(jobRepo)
		if err != nil {
			svr.Log(err, "unable to load jobs batch")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
			return
		}
		mode := eligibility.ParseMode(q.Get("mode"))
		now := time.Now()
		matches := engine.MatchBatch(profile, recs, mode, now)
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"user_age": eligibility.Age(profile.DOB, now),
			"count":    len(matches),
			"jobs":     matches,
		})
	}
}

func JobBySlugPageHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		recs, err := svr.LoadJobs(jobRepo)
		if err != nil {
			svr.Log(err, "unable to load jobs batch")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
			return
		}
		for _, rec := range recs {
			if rec.Slug == vars["slug"] {
				svr.Render(w, http.StatusOK, "job.html", map[string]interface{}{"Job": rec})
				return
			}
		}
		svr.JSON(w, http.StatusNotFound, map[string]string{"status": "not found"})
	}
}

func FeedHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svr.LoadJobs(jobRepo)
		if err != nil {
			svr.Log(err, "unable to load jobs batch")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
			return
		}
		now := time.Now()
		feed := &feeds.Feed{
			Title:       svr.GetConfig().SiteName,
			Link:        &feeds.Link{Href: svr.GetConfig().SourceURL},
			Description: "Latest government job notifications",
			Created:     now,
		}
		for _, rec := range recs {
			feed.Items = append(feed.Items, &feeds.Item{
				Id:          rec.Slug,
				Title:       rec.DisplayTitle,
				Link:        &feeds.Link{Href: rec.ApplyLink},
				Description: fmt.Sprintf("Age %d-%d, qualification %s", rec.MinAge, rec.MaxAge, rec.QualificationText),
				Created:     now,
			})
		}
		rss, err := feed.ToRss()
		if err != nil {
			svr.Log(err, "unable to render rss feed")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
			return
		}
		svr.XML(w, http.StatusOK, []byte(rss))
	}
}

func HealthHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
