package server

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"GoFuzzy/internal/automaton"
	"GoFuzzy/internal/distance"
	"GoFuzzy/internal/pairs"
)

// maxCompareWords bounds /compare requests; n words make n(n-1)/2 pairs.
const maxCompareWords = 256

// Handler holds HTTP handlers for the gofuzzy API.
type Handler struct {
	mgr     *Manager
	maxBody int64
	version string
	logger  *zap.SugaredLogger
}

// NewHandler creates a new Handler backed by the given Manager. Request
// bodies larger than maxBody bytes are rejected.
func NewHandler(mgr *Manager, maxBody int64, version string, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{mgr: mgr, maxBody: maxBody, version: version, logger: logger}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /match", h.handleMatch)
	mux.HandleFunc("POST /compare", h.handleCompare)
	mux.HandleFunc("POST /accepts", h.handleAccepts)
	mux.HandleFunc("POST /distance", h.handleDistance)

	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /ready", h.handleReady)
}

// --- Comparison ---

type matchRequest struct {
	A string `json:"a"`
	B string `json:"b"`
	K *int   `json:"k,omitempty"`
}

func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	eval, err := h.mgr.Evaluator(h.threshold(req.K))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := eval.Compare(req.A, req.B)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type compareRequest struct {
	Words []string `json:"words"`
	K     *int     `json:"k,omitempty"`
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Words) > maxCompareWords {
		writeError(w, http.StatusBadRequest, "too many words")
		return
	}
	if err := h.mgr.CheckLength(req.Words...); err != nil {
		h.fail(w, r, err)
		return
	}

	eval, err := h.mgr.Evaluator(h.threshold(req.K))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	results, err := eval.CompareAll(r.Context(), pairs.Enumerate(req.Words))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if results == nil {
		results = []pairs.Result{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"threshold": eval.Threshold(),
		"results":   results,
		"summary":   pairs.Summarize(results),
	})
}

// --- Single automaton ---

type acceptsRequest struct {
	Pattern string   `json:"pattern"`
	Inputs  []string `json:"inputs"`
	K       *int     `json:"k,omitempty"`
}

type acceptsResult struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
}

func (h *Handler) handleAccepts(w http.ResponseWriter, r *http.Request) {
	var req acceptsRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	eval, err := h.mgr.Evaluator(h.threshold(req.K))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	dfa, err := eval.Automaton(req.Pattern)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	results := make([]acceptsResult, len(req.Inputs))
	for i, in := range req.Inputs {
		results[i] = acceptsResult{Input: in, Accepted: automaton.Run(dfa, in)}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pattern":   req.Pattern,
		"threshold": dfa.Threshold(),
		"states":    dfa.NumStates(),
		"results":   results,
	})
}

func (h *Handler) handleDistance(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.mgr.CheckLength(req.A, req.B); err != nil {
		h.fail(w, r, err)
		return
	}
	resp := map[string]interface{}{
		"a":        req.A,
		"b":        req.B,
		"distance": distance.Levenshtein(req.A, req.B),
	}
	if req.K != nil {
		resp["within_k"] = distance.Within(req.A, req.B, *req.K)
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- Probes ---

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ready",
		"thresholds": h.mgr.Thresholds(),
	})
}

// --- Helpers ---

func (h *Handler) threshold(k *int) int {
	if k == nil {
		return h.mgr.DefaultThreshold()
	}
	return *k
}

// fail maps domain errors to status codes and logs the rest.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, automaton.ErrInvalidThreshold),
		errors.Is(err, ErrThresholdTooLarge),
		errors.Is(err, pairs.ErrPatternTooLong):
		writeError(w, http.StatusBadRequest, errorMessage(err))
	case errors.Is(err, automaton.ErrDFAStateLimitExceeded):
		writeError(w, http.StatusUnprocessableEntity, errorMessage(err))
	case r.Context().Err() != nil:
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		h.logger.Errorw("request failed",
			"request_id", RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func errorMessage(err error) string {
	msg := err.Error()
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		msg += " (" + strings.Join(hints, "; ") + ")"
	}
	return msg
}
