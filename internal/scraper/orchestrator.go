package scraper

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sarkarimatch/job-board/internal/job"
)

// Orchestrator fetches detail pages for a batch of stubs with bounded
// concurrency and extracts a record per stub. Workers share nothing: each
// reads its own stub and emits its own record, so no locking is needed.
type Orchestrator struct {
	fetcher   *Fetcher
	extractor *Extractor
	workers   int
	logger    zerolog.Logger
}

func NewOrchestrator(fetcher *Fetcher, extractor *Extractor, workers int, logger zerolog.Logger) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{fetcher: fetcher, extractor: extractor, workers: workers, logger: logger}
}

// Run blocks until every stub has been processed and returns one record
// per stub. A failed fetch or parse yields that stub's default record and
// a log line, never an error: one bad page cannot abort the batch. Result
// order follows completion, not submission; callers key by record ID.
func (o *Orchestrator) Run(ctx context.Context, stubs []Stub) []job.Record {
	sem := make(chan struct{}, o.workers)
	results := make(chan job.Record, len(stubs))
	var wg sync.WaitGroup

	for _, stub := range stubs {
		wg.Add(1)
		go func(stub Stub) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- o.scrapeOne(ctx, stub)
		}(stub)
	}
	wg.Wait()
	close(results)

	recs := make([]job.Record, 0, len(stubs))
	for rec := range results {
		recs = append(recs, rec)
	}
	return recs
}

func (o *Orchestrator) scrapeOne(ctx context.Context, stub Stub) job.Record {
	start := time.Now()
	doc, err := o.fetcher.Fetch(ctx, stub.DetailURL)
	if err != nil {
		o.logger.Warn().
			Err(err).
			Str("id", stub.ID).
			Str("url", stub.DetailURL).
			Msg("detail fetch failed, using defaults")
		return o.extractor.DefaultRecord(stub)
	}
	rec := o.extractor.Extract(doc, stub)
	o.logger.Info().
		Str("id", rec.ID).
		Str("title", rec.DisplayTitle).
		Dur("took", time.Since(start)).
		Msg("scraped")
	return rec
}
