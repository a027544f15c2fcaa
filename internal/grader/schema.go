package grader

import "github.com/abhisek/studypal/internal/llm"

// BatchSchema defines the JSON schema for batch grading responses.
// The graded array must carry one entry per submitted item, in order.
var BatchSchema = &llm.Schema{
	Name:        "answer-grading",
	Description: "Grades for a batch of free-text quiz answers, in submission order",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"graded": map[string]any{
				"type":        "array",
				"description": "One grading entry per submitted answer, in the same order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"grade": map[string]any{
							"type":        "string",
							"enum":        []any{"correct", "partial", "incorrect"},
							"description": "Coarse classification of the answer",
						},
						"score": map[string]any{
							"type":        "number",
							"minimum":     0.0,
							"maximum":     1.0,
							"description": "Fractional credit: 1 for correct, 0 for incorrect, in between for partial",
						},
						"feedback": map[string]any{
							"type":        "string",
							"description": "One or two sentences of learner-facing feedback",
						},
						"weak_areas": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Short concept tags the answer revealed gaps in",
						},
						"improvements": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Concrete suggestions for the learner",
						},
					},
					"required":             []any{"grade", "score", "feedback", "weak_areas", "improvements"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"graded"},
		"additionalProperties": false,
	},
}
