package evaluate

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoringEngine maps image bytes to a fixed heuristic score, so each side of
// a comparison gets a distinct canned analysis.
func scoringEngine(scores map[byte]float64) *stubEngine {
	return &stubEngine{respond: func(image []byte) (string, error) {
		tag := image[len(image)-1]
		score, ok := scores[tag]
		if !ok {
			return "", fmt.Errorf("unexpected image tag %q", tag)
		}
		return cannedResponse(score, nil), nil
	}}
}

func taggedImage(tag byte) Image {
	return Image{Data: append(bytes.Clone(pngBytes), tag)}
}

func TestCompareClearWinner(t *testing.T) {
	eng := scoringEngine(map[byte]float64{'a': 8.5, 'b': 6.0})
	ev := New(Options{Engine: eng})

	out, err := ev.Compare(context.Background(), taggedImage('a'), taggedImage('b'))
	require.NoError(t, err)

	assert.Equal(t, WinnerDesignA, out.Winner)
	assert.Equal(t, 85.0, out.DesignAScore)
	assert.Equal(t, 60.0, out.DesignBScore)
	assert.NotEmpty(t, out.Reasoning)
	assert.NotEmpty(t, out.Recommendations)
	assert.LessOrEqual(t, len(out.Recommendations), maxComparisonRecommendations)
	assert.Len(t, out.DesignAAnalysis.HeuristicScores, 16)
	assert.Len(t, out.DesignBAnalysis.HeuristicScores, 16)
	assert.Equal(t, int64(2), eng.callCount())
}

func TestCompareTieWithinThreshold(t *testing.T) {
	eng := scoringEngine(map[byte]float64{'a': 7.0, 'b': 7.1})
	ev := New(Options{Engine: eng})

	out, err := ev.Compare(context.Background(), taggedImage('a'), taggedImage('b'))
	require.NoError(t, err)

	assert.Equal(t, WinnerTie, out.Winner)
	assert.Contains(t, out.Reasoning, "very close in quality")
}

func TestCompareGapAtThresholdIsNotATie(t *testing.T) {
	eng := scoringEngine(map[byte]float64{'a': 7.0, 'b': 7.3})
	ev := New(Options{Engine: eng})

	out, err := ev.Compare(context.Background(), taggedImage('a'), taggedImage('b'))
	require.NoError(t, err)

	assert.Equal(t, WinnerDesignB, out.Winner)
	assert.Contains(t, out.Reasoning, "scored 3.0 points higher")
}

func TestCompareGapExactlyAtThresholdIsNotATie(t *testing.T) {
	eng := scoringEngine(map[byte]float64{'a': 7.0, 'b': 7.2})
	ev := New(Options{Engine: eng})

	out, err := ev.Compare(context.Background(), taggedImage('a'), taggedImage('b'))
	require.NoError(t, err)

	// Ties need a gap strictly below the threshold; a gap equal to it picks
	// a winner.
	assert.Equal(t, 70.0, out.DesignAScore)
	assert.Equal(t, 72.0, out.DesignBScore)
	assert.Equal(t, WinnerDesignB, out.Winner)
}

func TestCompareCustomTieThreshold(t *testing.T) {
	eng := scoringEngine(map[byte]float64{'a': 7.0, 'b': 7.3})
	ev := New(Options{Engine: eng, TieThreshold: 5})

	out, err := ev.Compare(context.Background(), taggedImage('a'), taggedImage('b'))
	require.NoError(t, err)
	assert.Equal(t, WinnerTie, out.Winner)
}

func TestCompareSymmetricUnderSwap(t *testing.T) {
	eng := scoringEngine(map[byte]float64{'a': 8.5, 'b': 6.0})
	ev := New(Options{Engine: eng})

	forward, err := ev.Compare(context.Background(), taggedImage('a'), taggedImage('b'))
	require.NoError(t, err)
	reversed, err := ev.Compare(context.Background(), taggedImage('b'), taggedImage('a'))
	require.NoError(t, err)

	assert.Equal(t, WinnerDesignA, forward.Winner)
	assert.Equal(t, WinnerDesignB, reversed.Winner)
	assert.Equal(t, forward.DesignAScore, reversed.DesignBScore)
	assert.Equal(t, forward.DesignBScore, reversed.DesignAScore)
}

func TestCompareValidatesBothBeforeAnyModelCall(t *testing.T) {
	eng := scoringEngine(map[byte]float64{'a': 8.0})
	ev := New(Options{Engine: eng})

	_, err := ev.Compare(context.Background(), taggedImage('a'), Image{})
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.Zero(t, eng.callCount())
}

func TestCompareSurfacesModelFailure(t *testing.T) {
	eng := &stubEngine{respond: func(image []byte) (string, error) {
		if image[len(image)-1] == 'b' {
			return "", fmt.Errorf("model overloaded")
		}
		return cannedResponse(7.0, nil), nil
	}}
	ev := New(Options{Engine: eng})

	_, err := ev.Compare(context.Background(), taggedImage('a'), taggedImage('b'))
	assert.Equal(t, KindUpstreamUnavailable, KindOf(err))
}

func TestMergeRecommendationsLowerScorerFirst(t *testing.T) {
	a := DesignAnalysis{OverallScore: 85, Recommendations: []string{"Tighten spacing", "Add focus rings"}}
	b := DesignAnalysis{OverallScore: 60, Recommendations: []string{"Fix contrast", "Add labels"}}

	out := mergeRecommendations(a, b)
	require.Len(t, out, 4)
	assert.Equal(t, []string{"Fix contrast", "Add labels", "Tighten spacing", "Add focus rings"}, out)
}

func TestMergeRecommendationsDeduplicatesCaseInsensitively(t *testing.T) {
	a := DesignAnalysis{OverallScore: 70, Recommendations: []string{"Fix contrast"}}
	b := DesignAnalysis{OverallScore: 60, Recommendations: []string{"fix contrast", "Add labels"}}

	out := mergeRecommendations(a, b)
	assert.Equal(t, []string{"fix contrast", "Add labels"}, out)
}

func TestMergeRecommendationsFallsBackWhenEmpty(t *testing.T) {
	out := mergeRecommendations(DesignAnalysis{OverallScore: 70}, DesignAnalysis{OverallScore: 60})
	assert.Equal(t, []string{
		"Focus on improving visual hierarchy and consistency",
		"Consider user testing to validate the design choice",
		"Iterate on the weaker areas identified in the analysis",
	}, out)
}
