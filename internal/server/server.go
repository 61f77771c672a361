package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/getsentry/raven-go"
	"github.com/gorilla/mux"

	"github.com/sarkarimatch/job-board/internal/config"
	"github.com/sarkarimatch/job-board/internal/job"
	"github.com/sarkarimatch/job-board/internal/middleware"
	"github.com/sarkarimatch/job-board/internal/template"
)

const CacheKeyJobsBatch = "jobsBatch"

type Server struct {
	cfg      config.Config
	router   *mux.Router
	tmpl     *template.Template
	bigCache *bigcache.BigCache
}

func NewServer(cfg config.Config, r *mux.Router, t *template.Template) Server {
	raven.SetDSN(cfg.SentryDSN)

	bigCache, err := bigcache.NewBigCache(bigcache.DefaultConfig(10 * time.Minute))
	svr := Server{
		cfg:      cfg,
		router:   r,
		tmpl:     t,
		bigCache: bigCache,
	}
	if err != nil {
		svr.Log(err, "unable to initialise big cache")
	}

	return svr
}

func (s Server) RegisterRoute(path string, handler func(w http.ResponseWriter, r *http.Request), methods []string) {
	s.router.HandleFunc(path, handler).Methods(methods...)
}

func (s Server) GetConfig() config.Config {
	return s.cfg
}

// LoadJobs returns the persisted batch, serving repeat requests from the
// in-process cache. A missing batch file is an empty batch.
func (s Server) LoadJobs(repo *job.Repository) ([]job.Record, error) {
	if s.bigCache != nil {
		if data, err := s.bigCache.Get(CacheKeyJobsBatch); err == nil {
			var recs []job.Record
			if err := json.Unmarshal(data, &recs); err == nil {
				return recs, nil
			}
		}
	}
	recs, err := repo.Load()
	if err != nil {
		return nil, err
	}
	if s.bigCache != nil {
		if data, err := json.Marshal(recs); err == nil {
			if err := s.bigCache.Set(CacheKeyJobsBatch, data); err != nil {
				s.Log(err, "unable to cache jobs batch")
			}
		}
	}
	return recs, nil
}

func (s Server) Render(w http.ResponseWriter, status int, htmlView string, data interface{}) error {
	dataMap := make(map[string]interface{})
	if data != nil {
		dataMap = data.(map[string]interface{})
	}
	dataMap["SiteName"] = s.cfg.SiteName

	return s.tmpl.Render(w, status, htmlView, dataMap)
}

func (s Server) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (s Server) XML(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/rss+xml")
	w.WriteHeader(status)
	w.Write(data)
}

func (s Server) Log(err error, msg string) {
	raven.CaptureErrorAndWait(err, map[string]string{"ctx": msg})
	log.Printf("%s: %+v", msg, err)
}

func (s Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	if s.cfg.Env == "dev" {
		log.Printf("local env http://localhost:%s", s.cfg.Port)
		addr = fmt.Sprintf("localhost:%s", s.cfg.Port)
	}
	return http.ListenAndServe(
		addr,
		middleware.LoggingMiddleware(middleware.HeadersMiddleware(s.router, s.cfg.Env)),
	)
}
