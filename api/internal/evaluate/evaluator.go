package evaluate

import (
	"context"

	"go.uber.org/zap"
)

// Engine is the vision-model client the evaluator calls. Satisfied by the
// engines in the vision package and by stubs in tests.
type Engine interface {
	Evaluate(ctx context.Context, prompt string, image []byte, mime string) (string, error)
}

// DefaultMaxImageBytes mirrors the original 10 MB upload ceiling.
const DefaultMaxImageBytes = 10 << 20

// DefaultTieThreshold is the score gap on the 0-100 scale below which two
// designs are declared equivalent. Policy constant, not model-derived.
const DefaultTieThreshold = 2.0

type Evaluator struct {
	engine        Engine
	log           *zap.Logger
	maxImageBytes int64
	tieThreshold  float64
}

type Options struct {
	Engine        Engine
	Log           *zap.Logger
	MaxImageBytes int64   // 0 means DefaultMaxImageBytes
	TieThreshold  float64 // 0 means DefaultTieThreshold
}

func New(opts Options) *Evaluator {
	ev := &Evaluator{
		engine:        opts.Engine,
		log:           opts.Log,
		maxImageBytes: opts.MaxImageBytes,
		tieThreshold:  opts.TieThreshold,
	}
	if ev.log == nil {
		ev.log = zap.NewNop()
	}
	if ev.maxImageBytes <= 0 {
		ev.maxImageBytes = DefaultMaxImageBytes
	}
	if ev.tieThreshold <= 0 {
		ev.tieThreshold = DefaultTieThreshold
	}
	return ev
}

// Analyze runs one design through prompt, model call and validation.
// Invalid input fails before the model is invoked; exactly one engine call
// happens per successful validation, with no retries.
func (ev *Evaluator) Analyze(ctx context.Context, img Image) (DesignAnalysis, error) {
	if err := img.validate(ev.maxImageBytes); err != nil {
		return DesignAnalysis{}, err
	}

	raw, err := ev.engine.Evaluate(ctx, Prompt(ModeSingle), img.Data, img.resolveMIME())
	if err != nil {
		return DesignAnalysis{}, NewError(KindUpstreamUnavailable,
			"design analysis is temporarily unavailable", err)
	}

	out, err := ParseAnalysis(raw, ev.log)
	if err != nil {
		ev.log.Error("model response failed validation",
			zap.Error(err), zap.String("response", truncate(raw, 500)))
		return DesignAnalysis{}, err
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
