// Package interpret generates an LLM-written narrative for a scored
// assessment. The static type profiles in internal/report always work;
// this layer adds a personalized portrait when a provider is configured.
package interpret

import (
	"time"

	"github.com/abhisek/typeprint/internal/scoring"
)

// Interpretation is an LLM-generated narrative for one result.
type Interpretation struct {
	TypeCode    string
	Headline    string
	Portrait    string
	Strengths   []string
	GrowthAreas []string
	ClarityNote string
	GeneratedAt time.Time
}

// Input holds everything the prompt needs about a scored assessment.
type Input struct {
	Respondent string
	Result     *scoring.Result
	Answered   int
	Omitted    int
}
