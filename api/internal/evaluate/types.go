// Package evaluate builds vision-model prompts, validates model replies and
// aggregates heuristic scores into analysis records.
package evaluate

import (
	"fmt"
	"strings"

	"design-evaluator/api/internal/util"
)

// Image is one design artifact at the boundary: raw bytes plus the declared
// media type. MIME may be empty, in which case it is sniffed from the bytes.
type Image struct {
	Data []byte
	MIME string
}

// resolveMIME returns the effective media type for the image.
func (img Image) resolveMIME() string {
	return util.PickMIME(img.MIME, "", img.Data)
}

func (img Image) validate(maxBytes int64) error {
	if len(img.Data) == 0 {
		return NewError(KindInvalidInput, "empty image", nil)
	}
	if int64(len(img.Data)) > maxBytes {
		return NewError(KindInvalidInput,
			fmt.Sprintf("image exceeds the %d byte limit", maxBytes), nil)
	}
	if mime := img.resolveMIME(); !strings.HasPrefix(mime, "image/") {
		return NewError(KindInvalidInput, "unsupported media type "+mime, nil)
	}
	return nil
}

// DesignAnalysis is the validated result of a single-design evaluation.
// OverallScore is always recomputed server-side from the heuristic scores.
type DesignAnalysis struct {
	OverallScore        float64            `json:"overall_score"`
	HeuristicScores     map[string]float64 `json:"heuristic_scores"`
	HeuristicReasoning  map[string]string  `json:"heuristic_reasoning"`
	Recommendations     []string           `json:"recommendations"`
	Strengths           []string           `json:"strengths"`
	AreasForImprovement []string           `json:"areas_for_improvement"`
	Summary             string             `json:"summary"`
}

// DesignBreakdown is a per-design block inside a comparison. The overall
// score lives at the comparison top level as design_a_score/design_b_score.
type DesignBreakdown struct {
	HeuristicScores     map[string]float64 `json:"heuristic_scores"`
	HeuristicReasoning  map[string]string  `json:"heuristic_reasoning"`
	Strengths           []string           `json:"strengths"`
	AreasForImprovement []string           `json:"areas_for_improvement"`
	Summary             string             `json:"summary"`
}

const (
	WinnerDesignA = "design_a"
	WinnerDesignB = "design_b"
	WinnerTie     = "tie"
)

// ComparisonAnalysis is the result of evaluating two designs independently
// and deriving a winner from their overall scores.
type ComparisonAnalysis struct {
	Winner          string          `json:"winner"`
	Reasoning       string          `json:"reasoning"`
	DesignAScore    float64         `json:"design_a_score"`
	DesignBScore    float64         `json:"design_b_score"`
	Recommendations []string        `json:"recommendations"`
	DesignAAnalysis DesignBreakdown `json:"design_a_analysis"`
	DesignBAnalysis DesignBreakdown `json:"design_b_analysis"`
}

func breakdown(a DesignAnalysis) DesignBreakdown {
	return DesignBreakdown{
		HeuristicScores:     a.HeuristicScores,
		HeuristicReasoning:  a.HeuristicReasoning,
		Strengths:           a.Strengths,
		AreasForImprovement: a.AreasForImprovement,
		Summary:             a.Summary,
	}
}
