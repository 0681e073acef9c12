package evaluate

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxComparisonRecommendations caps the merged recommendation list.
const maxComparisonRecommendations = 4

// Compare evaluates two designs independently and concurrently, then derives
// the winner from the two overall scores. Both model calls share the request
// context: cancelling the caller cancels both.
func (ev *Evaluator) Compare(ctx context.Context, a, b Image) (ComparisonAnalysis, error) {
	// Validate both up front so a bad image never costs a model call.
	if err := a.validate(ev.maxImageBytes); err != nil {
		return ComparisonAnalysis{}, err
	}
	if err := b.validate(ev.maxImageBytes); err != nil {
		return ComparisonAnalysis{}, err
	}

	var analysisA, analysisB DesignAnalysis
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		analysisA, err = ev.Analyze(gctx, a)
		return err
	})
	g.Go(func() error {
		var err error
		analysisB, err = ev.Analyze(gctx, b)
		return err
	})
	if err := g.Wait(); err != nil {
		return ComparisonAnalysis{}, err
	}

	scoreA, scoreB := analysisA.OverallScore, analysisB.OverallScore

	winner := WinnerTie
	switch {
	case math.Abs(scoreA-scoreB) < ev.tieThreshold:
	case scoreA > scoreB:
		winner = WinnerDesignA
	default:
		winner = WinnerDesignB
	}

	return ComparisonAnalysis{
		Winner:          winner,
		Reasoning:       comparisonReasoning(winner, analysisA, analysisB),
		DesignAScore:    scoreA,
		DesignBScore:    scoreB,
		Recommendations: mergeRecommendations(analysisA, analysisB),
		DesignAAnalysis: breakdown(analysisA),
		DesignBAnalysis: breakdown(analysisB),
	}, nil
}

// comparisonReasoning builds the winner explanation deterministically from
// the two completed analyses. A template keeps the verdict text reproducible
// given the same scores, which a third model call would not.
func comparisonReasoning(winner string, a, b DesignAnalysis) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Design A scored %.0f/100. %s", a.OverallScore, a.Summary))
	parts = append(parts, fmt.Sprintf("Design B scored %.0f/100. %s", b.OverallScore, b.Summary))

	gap := math.Abs(a.OverallScore - b.OverallScore)
	if winner == WinnerTie {
		parts = append(parts, fmt.Sprintf("The designs are very close in quality (difference: %.1f points).", gap))
	} else {
		parts = append(parts, fmt.Sprintf("The winning design scored %.1f points higher.", gap))
	}
	return strings.Join(parts, " ")
}

// mergeRecommendations combines both sub-analyses' recommendations, the
// lower-scoring design's first, deduplicated and capped.
func mergeRecommendations(a, b DesignAnalysis) []string {
	first, second := a.Recommendations, b.Recommendations
	if b.OverallScore < a.OverallScore {
		first, second = b.Recommendations, a.Recommendations
	}

	seen := make(map[string]bool)
	out := make([]string, 0, maxComparisonRecommendations)
	for _, list := range [][]string{first, second} {
		for i, rec := range list {
			if i >= 2 || len(out) >= maxComparisonRecommendations {
				break
			}
			if key := strings.ToLower(rec); !seen[key] {
				seen[key] = true
				out = append(out, rec)
			}
		}
	}
	if len(out) == 0 {
		out = []string{
			"Focus on improving visual hierarchy and consistency",
			"Consider user testing to validate the design choice",
			"Iterate on the weaker areas identified in the analysis",
		}
	}
	return out
}
