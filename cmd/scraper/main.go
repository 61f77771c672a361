package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/sarkarimatch/job-board/internal/config"
	"github.com/sarkarimatch/job-board/internal/job"
	"github.com/sarkarimatch/job-board/internal/scraper"
)

func main() {
	log.Println("scraping latest job notifications")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config %v", err)
	}
	runID, err := ksuid.NewRandom()
	if err != nil {
		log.Fatalf("unable to generate run id %v", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Str("run", runID.String()).
		Logger()

	rules := scraper.DefaultRules()
	rules.SourceOrigin = cfg.SourceOrigin
	fetcher := scraper.NewFetcher(cfg.FetchTimeout)

	start := time.Now()
	ctx := context.Background()
	doc, err := fetcher.Fetch(ctx, cfg.SourceURL)
	if err != nil {
		// a listing page we cannot parse at all is the one fatal case;
		// the previous batch on disk stays intact
		log.Fatalf("unable to fetch listing page: %+v", err)
	}
	stubs := scraper.ParseListing(doc, cfg.ScrapeLimit)
	logger.Info().Int("stubs", len(stubs)).Msg("listing parsed, starting detail scrape")

	orchestrator := scraper.NewOrchestrator(fetcher, scraper.NewExtractor(rules), cfg.MaxWorkers, logger)
	recs := orchestrator.Run(ctx, stubs)

	if err := job.NewRepository(cfg.JobsFile).Save(recs); err != nil {
		log.Fatalf("unable to save jobs batch: %+v", err)
	}
	logger.Info().
		Int("jobs", len(recs)).
		Str("file", cfg.JobsFile).
		Dur("took", time.Since(start)).
		Msg("batch saved")
}
