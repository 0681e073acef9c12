package evaluate

import (
	"fmt"
	"strings"

	"design-evaluator/api/internal/heuristics"
)

// Mode selects the evaluation flavour the prompt asks for.
type Mode string

const (
	ModeSingle     Mode = "single"
	ModeComparison Mode = "comparison"
)

// Prompt returns the instruction text for the vision model. Pure function of
// (mode, heuristic schema); the same mode always yields the same text.
func Prompt(mode Mode) string {
	if mode == ModeComparison {
		return comparisonPrompt()
	}
	return singlePrompt()
}

func singlePrompt() string {
	var b strings.Builder

	b.WriteString(`As a UX expert, analyze this design image using Jakob Nielsen's 10 usability heuristics and modern design system principles.

CLASSIC USABILITY HEURISTICS (Nielsen's):
`)
	for _, h := range heuristics.Nielsen() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", h.Label, h.Key, h.Description)
	}
	b.WriteString(`
DESIGN SYSTEM EVALUATION CRITERIA:
`)
	for _, h := range heuristics.DesignSystem() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", h.Label, h.Key, h.Description)
	}

	b.WriteString(`
IMPORTANT: Respond with ONLY valid JSON. Any text outside the JSON object is an error.

Provide your analysis in this exact JSON shape:
{
  "overall_score": <number 0-100>,
  "heuristic_scores": { <every heuristic key above>: <number 0-10, at most one decimal place> },
  "heuristic_reasoning": { <every heuristic key above>: "<1-2 sentences explaining the score>" },
  "recommendations": ["<3-5 specific, actionable recommendations>"],
  "strengths": ["<3-4 key strengths>"],
  "areas_for_improvement": ["<3-4 areas for improvement>"],
  "summary": "<1-2 sentence overall summary>"
}

Rules:
- heuristic_scores and heuristic_reasoning MUST contain every one of the `)
	fmt.Fprintf(&b, "%d keys listed above, exactly once, and no other keys.\n", heuristics.Count)
	b.WriteString(`- Each heuristic score is a number between 0 and 10 inclusive, integer or one decimal place.
- overall_score is a number between 0 and 100.
- Base every observation on what is actually visible in the image: reference concrete UI elements, colors, text and spacing.
- Return ONLY the JSON object, no markdown fences, no additional text.`)

	return b.String()
}

func comparisonPrompt() string {
	var b strings.Builder

	b.WriteString(`Compare these two design alternatives as a UX expert. Score each design independently against every heuristic below, then give a verdict.

HEURISTICS:
`)
	for _, h := range heuristics.All() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", h.Label, h.Key, h.Description)
	}

	b.WriteString(`
IMPORTANT: Respond with ONLY valid JSON. Any text outside the JSON object is an error.

Provide your analysis in this exact JSON shape:
{
  "winner": "design_a" | "design_b" | "tie",
  "reasoning": "<detailed explanation of the decision>",
  "design_a_score": <number 0-100>,
  "design_b_score": <number 0-100>,
  "design_a_analysis": { "heuristic_scores": { <every key above>: <number 0-10> } },
  "design_b_analysis": { "heuristic_scores": { <every key above>: <number 0-10> } },
  "recommendations": ["<how to improve the winning design>", "<general recommendations>"]
}

Rules:
- Score both designs against every one of the `)
	fmt.Fprintf(&b, "%d heuristic keys, independently of each other.\n", heuristics.Count)
	b.WriteString(`- Heuristic scores are numbers between 0 and 10; design scores are numbers between 0 and 100.
- Be objective and focus on user experience impact.
- Return ONLY the JSON object, no markdown fences, no additional text.`)

	return b.String()
}
