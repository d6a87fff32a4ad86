package platecheck

import "github.com/kavery/platewise/internal/llm"

// AnalysisSchema defines the JSON schema for plate analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "plate-analysis",
	Description: "Protein and plant assessment of a meal photo",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"has_protein": map[string]any{
				"type":        "boolean",
				"description": "True if the meal contains a visible protein source (meat, fish, eggs, dairy, legumes, tofu)",
			},
			"has_plants": map[string]any{
				"type":        "boolean",
				"description": "True if the meal contains visible vegetables or fruit",
			},
			"suggestion": map[string]any{
				"type":        "string",
				"description": "One short, encouraging suggestion to improve the plate. Empty string if the plate is already balanced.",
			},
		},
		"required":             []any{"has_protein", "has_plants", "suggestion"},
		"additionalProperties": false,
	},
}
