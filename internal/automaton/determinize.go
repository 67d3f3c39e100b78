package automaton

import (
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Option configures Determinize.
type Option func(*determinizeOptions)

type determinizeOptions struct {
	stateLimit int
	logger     *zap.SugaredLogger
}

// WithStateLimit aborts construction with ErrDFAStateLimitExceeded once the
// DFA would hold more than limit subsets. A limit of zero or less disables
// the check.
func WithStateLimit(limit int) Option {
	return func(o *determinizeOptions) { o.stateLimit = limit }
}

// WithLogger emits a debug line per constructed DFA.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *determinizeOptions) { o.logger = logger }
}

// ToDFA determinizes n with no state limit.
func (n *NFA) ToDFA() *DFA {
	d, err := Determinize(n)
	if err != nil {
		// Only the state limit can fail and none is set.
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "unbounded determinize failed"))
	}
	return d
}

// Determinize converts n to a DFA by subset construction over silent
// closures.
//
// Every subset is expanded exactly once: the DFA's subset index doubles as
// the seen-set, so a subset is queued only the first time it is produced.
// For each concrete symbol on an edge leaving the subset an explicit
// transition is recorded; if any member has a wildcard edge, the closure
// of the wildcard moves becomes the default transition.
func Determinize(n *NFA, opts ...Option) (*DFA, error) {
	var o determinizeOptions
	for _, opt := range opts {
		opt(&o)
	}
	began := time.Now()

	d := newDFA(n)
	start := n.SilentClosure(n.singleton(n.Start()))
	d.start = d.addState(start, n.intersectsAccepting(start))

	worklist := []State{d.start}
	discover := func(set StateSet) (State, error) {
		if id, ok := d.lookup(set); ok {
			return id, nil
		}
		if o.stateLimit > 0 && d.NumStates() >= o.stateLimit {
			return DeadState, errors.Wrapf(ErrDFAStateLimitExceeded,
				"pattern of %d runes, threshold %d: more than %d states", len(n.pattern), n.k, o.stateLimit)
		}
		id := d.addState(set, n.intersectsAccepting(set))
		worklist = append(worklist, id)
		return id, nil
	}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		set := d.subsets[cur]

		for _, sym := range n.symbols(set) {
			next, err := discover(n.Move(set, Exact(sym)))
			if err != nil {
				return nil, err
			}
			d.addTransition(cur, sym, next)
		}

		if n.hasWildcard(set) {
			next, err := discover(n.Move(set, Wildcard()))
			if err != nil {
				return nil, err
			}
			d.setDefault(cur, next)
		}
	}
	d.finish()

	if o.logger != nil {
		o.logger.Debugw("determinized levenshtein automaton",
			"pattern", string(n.pattern),
			"threshold", n.k,
			"nfa_states", n.NumStates(),
			"dfa_states", d.NumStates(),
			"time_us", time.Since(began).Microseconds(),
		)
	}
	return d, nil
}
