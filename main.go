package main

import (
	"embed"
	"log"

	"github.com/sarkarimatch/job-board/internal/config"
	"github.com/sarkarimatch/job-board/internal/eligibility"
	"github.com/sarkarimatch/job-board/internal/handler"
	"github.com/sarkarimatch/job-board/internal/job"
	"github.com/sarkarimatch/job-board/internal/server"
	"github.com/sarkarimatch/job-board/internal/template"

	"github.com/gorilla/mux"
)

//go:embed static/views
var staticFS embed.FS

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	jobRepo := job.NewRepository(cfg.JobsFile)
	engine := eligibility.NewEngine()

	svr := server.NewServer(
		cfg,
		mux.NewRouter(),
		template.NewTemplate(staticFS),
	)

	svr.RegisterRoute("/health", handler.HealthHandler(svr), []string{"GET"})

	svr.RegisterRoute("/", handler.IndexPageHandler(svr), []string{"GET"})

	// match user profile against the scraped batch
	svr.RegisterRoute("/match", handler.MatchPageHandler(svr, jobRepo, engine), []string{"POST"})

	// view job by slug
	svr.RegisterRoute("/job/{slug}", handler.JobBySlugPageHandler(svr, jobRepo), []string{"GET"})

	// rss feed of the latest notifications
	svr.RegisterRoute("/feed", handler.FeedHandler(svr, jobRepo), []string{"GET"})

	//
	// json api
	//

	svr.RegisterRoute("/api/jobs", handler.JobsAPIHandler(svr, jobRepo), []string{"GET"})
	svr.RegisterRoute("/api/match", handler.MatchAPIHandler(svr, jobRepo, engine), []string{"GET"})

	log.Fatal(svr.Run())
}
