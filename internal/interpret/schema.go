package interpret

import "github.com/abhisek/typeprint/internal/llm"

// InterpretationSchema defines the JSON schema for result interpretation.
var InterpretationSchema = &llm.Schema{
	Name:        "type-interpretation",
	Description: "A personalized narrative for a scored personality assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line characterization of this result (5-10 words)",
			},
			"portrait": map[string]any{
				"type":        "string",
				"description": "3-5 sentence portrait grounded in the reported preferences and their clarity",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 likely strengths (5-10 words each)",
			},
			"growth_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 likely growth areas (5-10 words each)",
			},
			"clarity_note": map[string]any{
				"type":        "string",
				"description": "1-2 sentences on any Slight-clarity preferences and what verifying them would mean; empty string if all preferences are clear",
			},
		},
		"required":             []any{"headline", "portrait", "strengths", "growth_areas", "clarity_note"},
		"additionalProperties": false,
	},
}
