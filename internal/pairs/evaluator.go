package pairs

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"GoFuzzy/internal/automaton"
	"GoFuzzy/internal/distance"
)

// ErrPatternTooLong is returned for words longer than Options.MaxPatternRunes.
var ErrPatternTooLong = errors.New("pattern too long")

// Options configures an Evaluator.
type Options struct {
	// Threshold is the edit distance every automaton is built with.
	Threshold int
	// Workers bounds concurrent comparisons in CompareAll. Values below one
	// mean one.
	Workers int
	// CacheSize is the number of automata kept; values below one mean 128.
	CacheSize int
	// StateLimit is passed to automaton.WithStateLimit.
	StateLimit int
	// MaxPatternRunes rejects longer words before any automaton is built.
	// Zero means no limit.
	MaxPatternRunes int
	Logger          *zap.SugaredLogger
}

// Evaluator runs comparisons for a single threshold. Automata are cached by
// pattern, which is sound because the threshold never changes. An Evaluator
// is safe for concurrent use.
type Evaluator struct {
	k          int
	workers    int
	stateLimit int
	maxRunes   int
	cache      *lru.Cache
	logger     *zap.SugaredLogger
}

func NewEvaluator(opts Options) (*Evaluator, error) {
	if opts.Threshold < 0 {
		return nil, errors.Wrapf(automaton.ErrInvalidThreshold, "threshold %d", opts.Threshold)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.CacheSize < 1 {
		opts.CacheSize = 128
	}
	cache, err := lru.New(opts.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create automaton cache")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Evaluator{
		k:          opts.Threshold,
		workers:    opts.Workers,
		stateLimit: opts.StateLimit,
		maxRunes:   opts.MaxPatternRunes,
		cache:      cache,
		logger:     logger,
	}, nil
}

func (e *Evaluator) Threshold() int { return e.k }

// Automaton returns the determinized automaton for pattern, building it on
// first use.
func (e *Evaluator) Automaton(pattern string) (*automaton.DFA, error) {
	if err := CheckLength(e.maxRunes, pattern); err != nil {
		return nil, err
	}
	if v, ok := e.cache.Get(pattern); ok {
		return v.(*automaton.DFA), nil
	}
	d, err := automaton.NewLevenshteinAutomaton(pattern, e.k,
		automaton.WithStateLimit(e.stateLimit),
		automaton.WithLogger(e.logger),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "build automaton for a %d-rune pattern", utf8.RuneCountInString(pattern))
	}
	// Concurrent builders of one pattern produce equal automata; the last
	// Add wins and nothing depends on which.
	e.cache.Add(pattern, d)
	return d, nil
}

// CheckLength returns ErrPatternTooLong if any word has more than max runes.
// A max of zero or less disables the check.
func CheckLength(max int, words ...string) error {
	if max <= 0 {
		return nil
	}
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n > max {
			return errors.WithHintf(
				errors.Wrapf(ErrPatternTooLong, "%d runes", n),
				"words are limited to %d runes", max)
		}
	}
	return nil
}

// Compare runs one pair through the automata and the oracle.
func (e *Evaluator) Compare(a, b string) (Result, error) {
	da, err := e.Automaton(a)
	if err != nil {
		return Result{}, err
	}
	db, err := e.Automaton(b)
	if err != nil {
		return Result{}, err
	}

	witness, matched := automaton.SharedString(da, db)
	d := distance.Levenshtein(a, b)
	r := Result{
		Pair:      Pair{A: a, B: b},
		Threshold: e.k,
		Matched:   matched,
		Witness:   witness,
		Distance:  d,
		WithinK:   d <= e.k,
		Bound:     d <= 2*e.k,
	}
	r.Consistent = (!r.Matched || r.Bound) && (!r.WithinK || r.Matched)

	if !r.Consistent {
		e.logger.Warnw("automaton verdict contradicts edit distance",
			"a", a, "b", b, "threshold", e.k, "matched", matched, "distance", d)
	}
	return r, nil
}

// CompareAll evaluates pairs concurrently and returns results in input
// order. It stops at the first error or when ctx is cancelled.
func (e *Evaluator) CompareAll(ctx context.Context, pairs []Pair) ([]Result, error) {
	began := time.Now()
	results := make([]Result, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, p := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := e.Compare(p.A, p.B)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.logger.Debugw("compared pairs",
		"pairs", len(pairs),
		"threshold", e.k,
		"workers", e.workers,
		"cached_automata", e.cache.Len(),
		"time_ms", time.Since(began).Milliseconds(),
	)
	return results, nil
}
