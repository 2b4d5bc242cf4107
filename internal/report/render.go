package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/typeprint/internal/scoring"
	"github.com/abhisek/typeprint/internal/session"
)

// clarityBarWidth is the width of the textual clarity gauge; the PCI
// scale is 1-30 so one cell maps to one index point.
const clarityBarWidth = 30

// ClarityBar renders a fixed-width gauge for a preference clarity
// index, e.g. "[#########·····················]".
func ClarityBar(pci int) string {
	if pci < 0 {
		pci = 0
	}
	if pci > clarityBarWidth {
		pci = clarityBarWidth
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strings.Repeat("#", pci))
	b.WriteString(strings.Repeat("·", clarityBarWidth-pci))
	b.WriteByte(']')
	return b.String()
}

// Render produces the plain-text report printed by the headless score
// and results commands.
func Render(out *session.Outcome) string {
	var b strings.Builder

	res := out.Result
	fmt.Fprintf(&b, "Reported type: %s\n", res.TypeCode)
	if p, ok := ProfileFor(res.TypeCode); ok {
		fmt.Fprintf(&b, "%s\n\n%s\n", p.Title, p.Summary)
	}

	b.WriteString("\n")
	for _, dr := range res.Ordered() {
		fmt.Fprintf(&b, "%-28s %s  %s %2d  %s (theta %+.2f)\n",
			dr.Dichotomy.DisplayName(), dr.Preference, ClarityBar(dr.PCI), dr.PCI, dr.PCC, dr.Theta)
	}

	fmt.Fprintf(&b, "\nAnswered %d of %d questions.\n", out.Answered, out.Answered+out.Omitted)
	if out.ManyOmissions() {
		fmt.Fprintf(&b, "Note: %d questions were left unanswered; the result may be unreliable.\n", out.Omitted)
	}
	if slight := out.SlightClarities(); len(slight) > 0 {
		letters := make([]string, 0, len(slight))
		for _, dr := range slight {
			letters = append(letters, dr.Preference)
		}
		fmt.Fprintf(&b, "Preferences reported at Slight clarity (%s) are worth verifying with the respondent.\n",
			strings.Join(letters, ", "))
	}
	return b.String()
}

// Headline returns the one-line summary used by list surfaces:
// the type code with its per-dichotomy clarity categories.
func Headline(res *scoring.Result) string {
	parts := make([]string, 0, 4)
	for _, dr := range res.Ordered() {
		parts = append(parts, fmt.Sprintf("%s %s", dr.Preference, dr.PCC))
	}
	return fmt.Sprintf("%s (%s)", res.TypeCode, strings.Join(parts, ", "))
}
