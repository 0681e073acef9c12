package evaluate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"design-evaluator/api/internal/heuristics"
)

func TestSinglePromptEnumeratesEveryKey(t *testing.T) {
	p := Prompt(ModeSingle)
	for _, key := range heuristics.Keys() {
		assert.Contains(t, p, key)
	}
	assert.Contains(t, p, "0 and 10")
	assert.Contains(t, p, "heuristic_scores")
	assert.Contains(t, p, "heuristic_reasoning")
	assert.Contains(t, p, "ONLY valid JSON")
	assert.Contains(t, p, "16 keys")
}

func TestComparisonPromptDemandsVerdict(t *testing.T) {
	p := Prompt(ModeComparison)
	for _, key := range heuristics.Keys() {
		assert.Contains(t, p, key)
	}
	assert.Contains(t, p, `"design_a" | "design_b" | "tie"`)
	assert.Contains(t, p, "design_a_score")
	assert.Contains(t, p, "design_b_score")
}

func TestPromptIsDeterministic(t *testing.T) {
	assert.Equal(t, Prompt(ModeSingle), Prompt(ModeSingle))
	assert.Equal(t, Prompt(ModeComparison), Prompt(ModeComparison))
	assert.NotEqual(t, Prompt(ModeSingle), Prompt(ModeComparison))
}

func TestPromptSeparatesHeuristicGroups(t *testing.T) {
	p := Prompt(ModeSingle)
	nielsen := strings.Index(p, "visibility_of_system_status")
	designSystem := strings.Index(p, "color_accessibility_usage")
	assert.Greater(t, designSystem, nielsen)
}
