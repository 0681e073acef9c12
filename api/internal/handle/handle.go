// Package handle is the HTTP boundary: multipart and JSON request decoding,
// per-mode timeouts, and the uniform {"detail": ...} error shape.
package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"design-evaluator/api/internal/config"
	"design-evaluator/api/internal/evaluate"
)

// Analyzer is the evaluation core as the handlers see it.
type Analyzer interface {
	Analyze(ctx context.Context, img evaluate.Image) (evaluate.DesignAnalysis, error)
	Compare(ctx context.Context, a, b evaluate.Image) (evaluate.ComparisonAnalysis, error)
}

// Capturer renders a URL into PNG bytes for the URL-mode endpoints.
type Capturer interface {
	Screenshot(ctx context.Context, url string) ([]byte, error)
}

type Handle struct {
	ev   Analyzer
	capt Capturer
	cfg  *config.Config
	log  *zap.Logger
}

func New(ev Analyzer, capt Capturer, cfg *config.Config, log *zap.Logger) *Handle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handle{ev: ev, capt: capt, cfg: cfg, log: log}
}

// Router wires every endpoint with the shared middleware chain.
func (h *Handle) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Root)
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/analyze", h.Analyze)
	mux.HandleFunc("/analyze-url", h.AnalyzeURL)
	mux.HandleFunc("/compare", h.Compare)
	mux.HandleFunc("/compare-urls", h.CompareURLs)
	return h.requestID(h.cors(mux))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Detail string `json:"detail"`
}

// writeError maps the evaluation error taxonomy onto HTTP statuses. Internal
// causes are logged, never echoed; model-validation failures surface as a
// generic retryable message because a partial analysis is worse than none.
func (h *Handle) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := evaluate.KindOf(err)

	var code int
	var detail string
	switch kind {
	case evaluate.KindInvalidInput, evaluate.KindUnreachableURL:
		code = http.StatusBadRequest
		var e *evaluate.Error
		if errors.As(err, &e) {
			detail = e.Detail
		}
	case evaluate.KindUpstreamUnavailable:
		code = http.StatusBadGateway
		detail = "design analysis is temporarily unavailable"
	case evaluate.KindMalformedResponse, evaluate.KindScoreOutOfRange:
		code = http.StatusBadGateway
		detail = "analysis failed, please try again"
	default:
		code = http.StatusInternalServerError
		detail = "internal error"
	}

	h.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("kind", kind.String()),
		zap.Error(err))
	writeJSON(w, code, errorBody{Detail: detail})
}
