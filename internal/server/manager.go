package server

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"GoFuzzy/internal/automaton"
	"GoFuzzy/internal/pairs"
)

// ErrThresholdTooLarge is returned for thresholds above the server limit.
var ErrThresholdTooLarge = errors.New("threshold exceeds server limit")

// Manager hands out one evaluator per threshold so requests with equal k
// share an automaton cache.
type Manager struct {
	template     pairs.Options
	maxThreshold int
	logger       *zap.SugaredLogger

	mu         sync.RWMutex
	evaluators map[int]*pairs.Evaluator
}

// NewManager creates a Manager. template.Threshold is the default k;
// thresholds above maxThreshold are refused.
func NewManager(template pairs.Options, maxThreshold int, logger *zap.SugaredLogger) *Manager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	template.Logger = logger
	return &Manager{
		template:     template,
		maxThreshold: maxThreshold,
		logger:       logger,
		evaluators:   make(map[int]*pairs.Evaluator),
	}
}

// DefaultThreshold is the k used when a request does not name one.
func (m *Manager) DefaultThreshold() int { return m.template.Threshold }

// CheckLength rejects words longer than the configured rune limit.
func (m *Manager) CheckLength(words ...string) error {
	return pairs.CheckLength(m.template.MaxPatternRunes, words...)
}

// Evaluator returns the evaluator for k, creating it on first use.
func (m *Manager) Evaluator(k int) (*pairs.Evaluator, error) {
	if k < 0 {
		return nil, errors.Wrapf(automaton.ErrInvalidThreshold, "threshold %d", k)
	}
	if k > m.maxThreshold {
		return nil, errors.Wrapf(ErrThresholdTooLarge, "threshold %d > %d", k, m.maxThreshold)
	}

	m.mu.RLock()
	e, ok := m.evaluators[k]
	m.mu.RUnlock()
	if ok {
		return e, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.evaluators[k]; ok {
		return e, nil
	}
	opts := m.template
	opts.Threshold = k
	e, err := pairs.NewEvaluator(opts)
	if err != nil {
		return nil, err
	}
	m.evaluators[k] = e
	m.logger.Infow("created evaluator", "threshold", k)
	return e, nil
}

// Thresholds lists the thresholds with a live evaluator, ascending.
func (m *Manager) Thresholds() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]int, 0, len(m.evaluators))
	for k := range m.evaluators {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
