package services

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"nutrifind/models"
)

// FoodSearcher is the fetch side of a search session. FDCService satisfies
// it; tests substitute fakes.
type FoodSearcher interface {
	SearchFoods(ctx context.Context, query string) ([]models.FoodItem, error)
}

// Snapshot is one published state of a search session: the query it belongs
// to, the sequence of the fetch that produced it, and the current results.
type Snapshot struct {
	Query   string            `json:"query"`
	Seq     uint64            `json:"seq"`
	Results []models.FoodItem `json:"results"`
}

// SearchController owns the live query of one search session. Edits arriving
// within the debounce window coalesce to a single fetch for the final value.
// Queries of length 2 or less clear the results without fetching. Every
// fetch carries a sequence number and completions that are no longer the
// latest issued are discarded, so a slow stale response can never overwrite
// newer results.
//
// The query, the result list and the latest sequence are touched only by the
// run loop goroutine; the subscriber callback is invoked from that same
// goroutine.
type SearchController struct {
	searcher FoodSearcher
	logger   *zap.Logger
	debounce time.Duration
	publish  func(Snapshot)

	queries chan string
	quit    chan struct{}
	once    sync.Once
}

type fetchResult struct {
	seq   uint64
	query string
	items []models.FoodItem
	err   error
}

// NewSearchController starts the session's run loop. publish receives every
// state transition and must not block for long.
func NewSearchController(searcher FoodSearcher, logger *zap.Logger, debounce time.Duration, publish func(Snapshot)) *SearchController {
	c := &SearchController{
		searcher: searcher,
		logger:   logger,
		debounce: debounce,
		publish:  publish,
		queries:  make(chan string, 16),
		quit:     make(chan struct{}),
	}
	go c.run()
	return c
}

// SetQuery records a keystroke. Each call restarts the debounce timer.
func (c *SearchController) SetQuery(q string) {
	select {
	case c.queries <- q:
	case <-c.quit:
	}
}

// Close stops the run loop. Fetches already in flight are not cancelled;
// their completions are simply never published.
func (c *SearchController) Close() {
	c.once.Do(func() { close(c.quit) })
}

func (c *SearchController) run() {
	timer := time.NewTimer(c.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	results := make(chan fetchResult, 8)
	var (
		pending string
		seq     uint64
	)

	for {
		select {
		case q := <-c.queries:
			pending = q
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(c.debounce)

		case <-timer.C:
			// Character count, whitespace included. Byte length would let
			// short multibyte queries through.
			if utf8.RuneCountInString(pending) <= 2 {
				seq++ // supersedes any fetch still in flight
				c.publish(Snapshot{Query: pending, Seq: seq})
				continue
			}
			seq++
			go c.fetch(seq, pending, results)

		case r := <-results:
			if r.seq != seq {
				c.logger.Debug("discarding stale search response",
					zap.String("query", r.query), zap.Uint64("seq", r.seq))
				continue
			}
			if r.err != nil {
				c.logger.Warn("food search failed",
					zap.String("query", r.query), zap.Error(r.err))
				c.publish(Snapshot{Query: r.query, Seq: r.seq})
				continue
			}
			c.publish(Snapshot{Query: r.query, Seq: r.seq, Results: r.items})

		case <-c.quit:
			return
		}
	}
}

func (c *SearchController) fetch(seq uint64, query string, out chan<- fetchResult) {
	items, err := c.searcher.SearchFoods(context.Background(), query)
	select {
	case out <- fetchResult{seq: seq, query: query, items: items, err: err}:
	case <-c.quit:
	}
}
