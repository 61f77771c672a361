package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	Env          string // either prod or dev
	SentryDSN    string
	SiteName     string
	SourceURL    string // listing page to scrape
	SourceOrigin string // origin used to resolve root-relative hrefs
	JobsFile     string // path of the persisted batch
	ScrapeLimit  int    // max listing rows scraped per run
	MaxWorkers   int    // concurrent detail page fetches
	FetchTimeout time.Duration
}

func LoadConfig() (Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		return Config{}, fmt.Errorf("PORT cannot be empty")
	}
	env := os.Getenv("ENV")
	if env == "" {
		return Config{}, fmt.Errorf("ENV cannot be empty")
	}
	sentryDSN := os.Getenv("SENTRY_DSN")
	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		siteName = "SarkariMatch"
	}
	sourceURL := os.Getenv("SOURCE_URL")
	if sourceURL == "" {
		sourceURL = "https://www.freejobalert.com/latest-notifications/"
	}
	sourceOrigin := os.Getenv("SOURCE_ORIGIN")
	if sourceOrigin == "" {
		sourceOrigin = "https://www.freejobalert.com"
	}
	jobsFile := os.Getenv("JOBS_FILE")
	if jobsFile == "" {
		jobsFile = "jobs.json"
	}
	scrapeLimit, err := strconv.Atoi(os.Getenv("SCRAPE_LIMIT"))
	if err != nil {
		scrapeLimit = 15
	}
	maxWorkers, err := strconv.Atoi(os.Getenv("MAX_WORKERS"))
	if err != nil {
		maxWorkers = 10
	}
	fetchTimeoutSecs, err := strconv.Atoi(os.Getenv("FETCH_TIMEOUT_SECS"))
	if err != nil {
		fetchTimeoutSecs = 10
	}

	return Config{
		Port:         port,
		Env:          env,
		SentryDSN:    sentryDSN,
		SiteName:     siteName,
		SourceURL:    sourceURL,
		SourceOrigin: sourceOrigin,
		JobsFile:     jobsFile,
		ScrapeLimit:  scrapeLimit,
		MaxWorkers:   maxWorkers,
		FetchTimeout: time.Duration(fetchTimeoutSecs) * time.Second,
	}, nil
}
