package interpret

import (
	"fmt"
	"strings"

	"github.com/abhisek/typeprint/internal/report"
	"github.com/abhisek/typeprint/internal/scoring"
)

const interpretSystemPrompt = `You write short, balanced interpretations of personality questionnaire results for adults. You describe tendencies, never destiny: preferences are leanings, not abilities or limits. You are warm but plain-spoken, and you never flatter.`

func buildInterpretUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Reported type: %s\n", input.Result.TypeCode))
	if p, ok := report.ProfileFor(input.Result.TypeCode); ok {
		b.WriteString(fmt.Sprintf("Standard sketch: %s\n", p.Summary))
	}
	if input.Respondent != "" {
		b.WriteString(fmt.Sprintf("Respondent: %s\n", input.Respondent))
	}

	b.WriteString("\nPer-dichotomy results:\n")
	var slight []string
	for _, dr := range input.Result.Ordered() {
		b.WriteString(fmt.Sprintf("- %s: preference %s, clarity index %d of 30 (%s)\n",
			dr.Dichotomy.DisplayName(), dr.Preference, dr.PCI, dr.PCC))
		if dr.PCC == scoring.ClaritySlight {
			slight = append(slight, dr.Preference)
		}
	}

	if len(slight) > 0 {
		b.WriteString(fmt.Sprintf("\nSlight-clarity preferences: %s. These letters are near the midpoint and could plausibly be the opposite pole.\n",
			strings.Join(slight, ", ")))
	}
	if input.Omitted > 0 {
		b.WriteString(fmt.Sprintf("\n%d of %d questions were left unanswered.\n",
			input.Omitted, input.Answered+input.Omitted))
	}

	b.WriteString(`
Instructions:
Write an interpretation of this result:
1. A one-line headline characterizing the result.
2. A 3-5 sentence portrait. Weave in the clarity of each preference: a Very Clear preference can be stated confidently, a Slight one must be hedged.
3. 2-4 likely strengths and 2-4 likely growth areas, each 5-10 words, tied to the reported preferences.
4. If any preference is Slight, add a clarity note (1-2 sentences) suggesting the respondent check whether the opposite pole fits better. If all preferences are Moderate or clearer, the clarity note is an empty string.
Address the respondent directly as "you". Do not mention theta, indexes, or scoring mechanics.`)

	return b.String()
}
