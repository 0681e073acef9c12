package evaluate

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"design-evaluator/api/internal/heuristics"
	"design-evaluator/api/internal/util"
)

// consistencyTolerance is the allowed gap between the model's self-reported
// overall score and the one recomputed from its heuristic scores before a
// warning is logged. The recomputed value always wins either way.
const consistencyTolerance = 5.0

// modelAnalysis is the raw shape the model is asked to produce. The model's
// overall_score is observed but never trusted.
type modelAnalysis struct {
	OverallScore        *float64           `json:"overall_score"`
	HeuristicScores     map[string]float64 `json:"heuristic_scores"`
	HeuristicReasoning  map[string]string  `json:"heuristic_reasoning"`
	Recommendations     []string           `json:"recommendations"`
	Strengths           []string           `json:"strengths"`
	AreasForImprovement []string           `json:"areas_for_improvement"`
	Summary             string             `json:"summary"`
}

// ParseAnalysis validates raw model output against the heuristic schema and
// returns a schema-complete DesignAnalysis, or an *Error. A response is never
// returned partially valid: any missing key, extraneous key or out-of-range
// score fails the whole parse.
func ParseAnalysis(raw string, log *zap.Logger) (DesignAnalysis, error) {
	if log == nil {
		log = zap.NewNop()
	}

	payload := util.ExtractJSONObject(raw)
	if payload == "" {
		return DesignAnalysis{}, NewError(KindMalformedResponse,
			"model returned no JSON object", nil)
	}

	var m modelAnalysis
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return DesignAnalysis{}, NewError(KindMalformedResponse,
			"model returned invalid JSON", err)
	}

	if err := checkScoreSet(m.HeuristicScores); err != nil {
		return DesignAnalysis{}, err
	}
	if err := checkReasoning(m.HeuristicReasoning); err != nil {
		return DesignAnalysis{}, err
	}

	overall := OverallScore(m.HeuristicScores)
	if m.OverallScore != nil && math.Abs(*m.OverallScore-overall) > consistencyTolerance {
		log.Warn("model overall score diverges from recomputed value",
			zap.Float64("model", *m.OverallScore),
			zap.Float64("recomputed", overall))
	}

	out := DesignAnalysis{
		OverallScore:        overall,
		HeuristicScores:     m.HeuristicScores,
		HeuristicReasoning:  m.HeuristicReasoning,
		Recommendations:     cleanList(m.Recommendations),
		Strengths:           cleanList(m.Strengths),
		AreasForImprovement: cleanList(m.AreasForImprovement),
		Summary:             strings.TrimSpace(m.Summary),
	}

	for name, list := range map[string][]string{
		"recommendations":       out.Recommendations,
		"strengths":             out.Strengths,
		"areas_for_improvement": out.AreasForImprovement,
	} {
		if len(list) == 0 {
			log.Info("model returned no usable entries", zap.String("field", name))
		}
	}

	return out, nil
}

// OverallScore is the single aggregation rule: unweighted mean of the
// heuristic scores rescaled from 0-10 to 0-100, rounded, clamped.
func OverallScore(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range scores {
		sum += v
	}
	overall := math.Round(sum / float64(len(scores)) * 10)
	return math.Min(100, math.Max(0, overall))
}

func checkScoreSet(scores map[string]float64) error {
	keys := heuristics.Keys()
	for _, key := range keys {
		v, ok := scores[key]
		if !ok {
			return NewError(KindMalformedResponse,
				"heuristic_scores missing key "+key, nil)
		}
		if v < 0 || v > 10 {
			return NewError(KindScoreOutOfRange,
				fmt.Sprintf("score %g for %s is outside [0, 10]", v, key), nil)
		}
	}
	if len(scores) != len(keys) {
		for k := range scores {
			if _, ok := heuristics.Lookup(k); !ok {
				return NewError(KindMalformedResponse,
					"heuristic_scores has unknown key "+k, nil)
			}
		}
	}
	return nil
}

func checkReasoning(reasoning map[string]string) error {
	for _, key := range heuristics.Keys() {
		if _, ok := reasoning[key]; !ok {
			return NewError(KindMalformedResponse,
				"heuristic_reasoning missing key "+key, nil)
		}
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
