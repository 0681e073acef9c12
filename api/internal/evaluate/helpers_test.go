package evaluate

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"design-evaluator/api/internal/heuristics"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

// cannedResponse builds a schema-complete model reply with every heuristic at
// the given score. overrides patches individual top-level fields afterwards.
func cannedResponse(score float64, overrides map[string]any) string {
	scores := make(map[string]float64, heuristics.Count)
	reasoning := make(map[string]string, heuristics.Count)
	for _, key := range heuristics.Keys() {
		scores[key] = score
		reasoning[key] = "The layout shows clear evidence for " + key + "."
	}
	doc := map[string]any{
		"overall_score":         score * 10,
		"heuristic_scores":      scores,
		"heuristic_reasoning":   reasoning,
		"recommendations":       []string{"Improve error messaging clarity", "Add loading states"},
		"strengths":             []string{"Clean visual hierarchy", "Consistent color scheme"},
		"areas_for_improvement": []string{"Add accessibility features", "Optimize for mobile"},
		"summary":               "Well-designed interface with strong visual consistency.",
	}
	for k, v := range overrides {
		doc[k] = v
	}
	raw, _ := json.Marshal(doc)
	return string(raw)
}

// stubEngine returns canned text per call and counts invocations.
type stubEngine struct {
	calls   int64
	respond func(image []byte) (string, error)
}

func (s *stubEngine) Evaluate(_ context.Context, _ string, image []byte, _ string) (string, error) {
	atomic.AddInt64(&s.calls, 1)
	return s.respond(image)
}

func (s *stubEngine) callCount() int64 { return atomic.LoadInt64(&s.calls) }
