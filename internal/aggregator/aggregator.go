package aggregator

import (
	"context"
	"errors"
	"log"

	"github.com/hostdni/host-aggregator/internal/config"
	"github.com/hostdni/host-aggregator/internal/model"
	"github.com/hostdni/host-aggregator/internal/parser"
)

// ErrNoEntries is returned when every source failed or produced nothing.
var ErrNoEntries = errors.New("no entries collected from any source")

// Fetcher downloads one blocklist body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Stats summarizes one aggregation run.
type Stats struct {
	TotalParsed    int            // entries before deduplication
	Unique         int            // entries after deduplication
	Duplicates     int            // entries discarded as duplicates
	FailedSources  []string       // URLs that could not be fetched
	CategoryCounts map[string]int // unique entries per category
}

// Aggregator runs the fetch → parse → dedupe pipeline over a fixed
// source table, one source at a time.
type Aggregator struct {
	client  Fetcher
	sources []config.Source
	verbose bool
}

// New creates an Aggregator over the given sources.
func New(client Fetcher, sources []config.Source, verbose bool) *Aggregator {
	return &Aggregator{
		client:  client,
		sources: sources,
		verbose: verbose,
	}
}

// Run fetches and parses every source in declaration order, then
// deduplicates the combined list. A source that fails to fetch is logged
// and skipped; the run continues with the rest. If nothing at all was
// collected, Run returns ErrNoEntries.
func (a *Aggregator) Run(ctx context.Context) ([]model.Entry, Stats, error) {
	stats := Stats{CategoryCounts: make(map[string]int)}

	var all []model.Entry
	for _, src := range a.sources {
		p, err := parser.ForFormat(src.Format)
		if err != nil {
			return nil, stats, err
		}

		content, err := a.client.Fetch(ctx, src.URL)
		if err != nil {
			log.Printf("aggregator: skipping %s: %v", src.URL, err)
			stats.FailedSources = append(stats.FailedSources, src.URL)
			continue
		}

		entries := p.Parse(content, src.Category)
		log.Printf("aggregator: parsed %d entries from %s", len(entries), src.Category)
		all = append(all, entries...)
	}

	if len(all) == 0 {
		return nil, stats, ErrNoEntries
	}

	stats.TotalParsed = len(all)

	unique := a.deduplicate(all)
	stats.Unique = len(unique)
	stats.Duplicates = stats.TotalParsed - stats.Unique
	for _, e := range unique {
		stats.CategoryCounts[e.Category]++
	}

	log.Printf("aggregator: removed %d duplicate entries", stats.Duplicates)

	return unique, stats, nil
}

// deduplicate keeps the first occurrence of each hostname, preserving
// relative order. The category of the first source that listed a
// hostname wins; later duplicates are dropped regardless of category.
func (a *Aggregator) deduplicate(entries []model.Entry) []model.Entry {
	seen := make(map[string]bool, len(entries))
	unique := make([]model.Entry, 0, len(entries))

	for _, e := range entries {
		if seen[e.Hostname] {
			if a.verbose {
				log.Printf("aggregator: duplicate entry: %s", e.Hostname)
			}
			continue
		}
		seen[e.Hostname] = true
		unique = append(unique, e)
	}

	return unique
}
