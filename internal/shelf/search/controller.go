package search

import (
	"context"
	"sync"
	"time"

	"bookshelf/internal/shelf/openlibrary"

	"github.com/rs/zerolog/log"
)

// DefaultDebounceInterval is the quiet period the input must hold
// still before a lookup is issued.
const DefaultDebounceInterval = 500 * time.Millisecond

// Searcher is the suggestion lookup the controller drives.
// *openlibrary.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, title string) ([]openlibrary.Candidate, error)
}

// Controller turns per-keystroke input into a debounced, cancelable
// sequence of suggestion lookups.
//
// Two pieces of state mirror the input: raw (every keystroke) and
// settled (updated once raw has been stable for the debounce
// interval). A settle to a non-empty value issues exactly one lookup;
// a settle to empty clears the list without one.
//
// Staleness is handled with a generation counter rather than timer
// cancellation: every settle bumps the generation, every in-flight
// lookup carries the generation it started under, and a result is
// applied only while its tag still matches. A late response for a
// superseded query can therefore never overwrite newer results,
// whichever order the responses arrive in.
type Controller struct {
	searcher Searcher
	interval time.Duration

	// onResults, when set, is invoked (outside the lock) each time the
	// visible suggestion list changes.
	onResults func(query string, candidates []openlibrary.Candidate)

	ctx    context.Context
	cancel context.CancelFunc

	mu           sync.Mutex
	raw          string
	settled      string
	generation   uint64
	timer        *time.Timer
	results      []openlibrary.Candidate
	resultsQuery string
	closed       bool
}

type Option func(*Controller)

// WithInterval overrides the debounce interval. Tests use this to keep
// the quiet period short.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithOnResults registers a callback for suggestion list updates.
func WithOnResults(fn func(query string, candidates []openlibrary.Candidate)) Option {
	return func(c *Controller) { c.onResults = fn }
}

func NewController(searcher Searcher, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		searcher: searcher,
		interval: DefaultDebounceInterval,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetInput records a keystroke. Any pending settle timer is replaced,
// so at most one lookup is issued per quiet period regardless of
// typing speed.
func (c *Controller) SetInput(input string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.raw = input
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.interval, func() {
		c.settle(input)
	})
}

// settle promotes input to the settled value once it has held still.
// Runs on the timer goroutine.
func (c *Controller) settle(input string) {
	c.mu.Lock()

	if c.closed || input == c.settled {
		c.mu.Unlock()
		return
	}

	c.settled = input
	c.generation++
	gen := c.generation

	if input == "" {
		c.results = nil
		c.resultsQuery = ""
		cb := c.onResults
		c.mu.Unlock()

		if cb != nil {
			cb("", nil)
		}
		return
	}

	c.mu.Unlock()
	go c.fetch(gen, input)
}

// fetch issues the lookup tagged with the generation it started under.
func (c *Controller) fetch(gen uint64, query string) {
	candidates, err := c.searcher.Search(c.ctx, query)
	if err != nil {
		if c.ctx.Err() != nil {
			// Torn down while in flight; nothing to report.
			return
		}
		// Degrade to an empty list; suggestions never block the form.
		log.Warn().Err(err).Str("query", query).Msg("suggestion lookup failed")
		candidates = nil
	}

	c.mu.Lock()
	if c.closed || gen != c.generation {
		// Superseded while in flight; discard.
		c.mu.Unlock()
		return
	}
	c.results = candidates
	c.resultsQuery = query
	cb := c.onResults
	c.mu.Unlock()

	if cb != nil {
		cb(query, candidates)
	}
}

// Snapshot returns the settled query the current suggestion list
// belongs to, plus a copy of that list.
func (c *Controller) Snapshot() (string, []openlibrary.Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	candidates := make([]openlibrary.Candidate, len(c.results))
	copy(candidates, c.results)
	return c.resultsQuery, candidates
}

// RawInput returns the latest keystroke state.
func (c *Controller) RawInput() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw
}

// Reset clears input, settled state and the suggestion list without
// waiting out the debounce window. Selecting a suggestion ends the
// search session this way.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.raw = ""
	c.settled = ""
	c.generation++ // outstanding lookups become stale
	c.results = nil
	c.resultsQuery = ""
}

// Close tears the controller down: the pending timer is stopped and
// any in-flight lookup result is ignored on arrival.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.cancel()
}
