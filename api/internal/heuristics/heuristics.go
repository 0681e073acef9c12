// Package heuristics defines the fixed evaluation framework: Nielsen's ten
// usability heuristics plus six modern design-system criteria. The set and its
// ordering are stable; prompt enumeration and rendering both rely on it.
package heuristics

type Heuristic struct {
	Key         string
	Label       string
	Description string
	SourceURL   string
}

// Count is the number of dimensions every score set must carry.
const Count = 16

const (
	nielsenSource      = "https://www.nngroup.com/articles/ten-usability-heuristics/"
	designSystemSource = "https://ux.redhat.com/foundations/"
)

var all = []Heuristic{
	{
		Key:         "visibility_of_system_status",
		Label:       "Visibility of System Status",
		Description: "The system should keep users informed about what is happening",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "match_system_real_world",
		Label:       "Match Between System and the Real World",
		Description: "The system should speak the users' language and follow real-world conventions",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "user_control_freedom",
		Label:       "User Control and Freedom",
		Description: "Users need to feel in control and have clear ways to undo actions",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "consistency_standards",
		Label:       "Consistency and Standards",
		Description: "Follow platform conventions and maintain internal consistency",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "error_prevention",
		Label:       "Error Prevention",
		Description: "Prevent problems from occurring in the first place",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "recognition_rather_than_recall",
		Label:       "Recognition Rather Than Recall",
		Description: "Make elements visible rather than requiring memorization",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "flexibility_efficiency",
		Label:       "Flexibility and Efficiency of Use",
		Description: "Provide shortcuts and customization for expert users",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "aesthetic_minimalist_design",
		Label:       "Aesthetic and Minimalist Design",
		Description: "Avoid unnecessary elements and focus on essential content",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "error_recovery",
		Label:       "Error Recovery",
		Description: "Help users recognize, diagnose, and recover from errors",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "help_documentation",
		Label:       "Help and Documentation",
		Description: "Provide easily searchable help when needed",
		SourceURL:   nielsenSource,
	},
	{
		Key:         "color_accessibility_usage",
		Label:       "Color and Accessibility Usage",
		Description: "Colors should be accessible, meaningful, and follow semantic usage patterns",
		SourceURL:   designSystemSource,
	},
	{
		Key:         "typography_hierarchy",
		Label:       "Typography and Hierarchy",
		Description: "Text should establish clear hierarchy using appropriate scales, weights, and spacing",
		SourceURL:   designSystemSource,
	},
	{
		Key:         "design_token_consistency",
		Label:       "Design Token Consistency",
		Description: "Visual properties should follow consistent token-based design patterns",
		SourceURL:   designSystemSource,
	},
	{
		Key:         "brand_voice_expression",
		Label:       "Brand Voice and Expression",
		Description: "Design should authentically express brand personality and values",
		SourceURL:   designSystemSource,
	},
	{
		Key:         "responsive_adaptability",
		Label:       "Responsive Adaptability",
		Description: "Interface should work seamlessly across different screen sizes and contexts",
		SourceURL:   designSystemSource,
	},
	{
		Key:         "interaction_feedback",
		Label:       "Interaction Feedback",
		Description: "User actions should provide clear, immediate, and appropriate feedback",
		SourceURL:   designSystemSource,
	},
}

// All returns every heuristic in its canonical order: the ten Nielsen
// heuristics first, then the six design-system criteria.
func All() []Heuristic {
	out := make([]Heuristic, len(all))
	copy(out, all)
	return out
}

// Nielsen returns the ten classic usability heuristics.
func Nielsen() []Heuristic {
	out := make([]Heuristic, 10)
	copy(out, all[:10])
	return out
}

// DesignSystem returns the six modern design-system criteria.
func DesignSystem() []Heuristic {
	out := make([]Heuristic, 6)
	copy(out, all[10:])
	return out
}

// Keys returns the dimension keys in canonical order.
func Keys() []string {
	out := make([]string, len(all))
	for i, h := range all {
		out[i] = h.Key
	}
	return out
}

// Lookup returns the heuristic for a key, for presentation-layer tables.
func Lookup(key string) (Heuristic, bool) {
	for _, h := range all {
		if h.Key == key {
			return h, true
		}
	}
	return Heuristic{}, false
}
