package scoring

import (
	"math"

	"github.com/abhisek/typeprint/internal/itembank"
)

// Clarity is the qualitative bucket of a preference clarity index.
type Clarity string

const (
	ClaritySlight    Clarity = "Slight"
	ClarityModerate  Clarity = "Moderate"
	ClarityClear     Clarity = "Clear"
	ClarityVeryClear Clarity = "Very Clear"
)

// DichotomyResult is the reportable outcome for one dichotomy.
type DichotomyResult struct {
	Dichotomy  itembank.Dichotomy `json:"dichotomy"`
	Theta      float64            `json:"theta"` // rounded to 2 decimals
	Preference string             `json:"preference"`
	PCI        int                `json:"pci"` // 1-30
	PCC        Clarity            `json:"pcc"`
}

// ResolvePreference converts a theta estimate into the reportable
// preference, clarity index, and clarity category for a dichotomy,
// applying the tie-break and midpoint correction rules.
func ResolvePreference(d itembank.Dichotomy, theta float64) DichotomyResult {
	pref := d.TieBreaker()
	switch {
	case theta > 0:
		pref = d.PositivePole()
	case theta < 0:
		pref = d.NegativePole()
	}

	pci := int(math.Round(math.Abs(theta) / ThetaMax * 30))
	if pci < 1 {
		// Clarity is never reported as zero.
		pci = 1
	}

	pref = applyMidpointAdjustment(d, pref, pci)

	return DichotomyResult{
		Dichotomy:  d,
		Theta:      math.Round(theta*100) / 100,
		Preference: pref,
		PCI:        pci,
		PCC:        clarityCategory(pci),
	}
}

func clarityCategory(pci int) Clarity {
	switch {
	case pci >= 26:
		return ClarityVeryClear
	case pci >= 16:
		return ClarityClear
	case pci >= 6:
		return ClarityModerate
	default:
		return ClaritySlight
	}
}

// applyMidpointAdjustment flips certain low-clarity preferences to the
// opposite pole. The rules are asymmetric: only S to N, T to F and
// J to P flip, never the reverse, and E-I has no midpoint rule at all.
func applyMidpointAdjustment(d itembank.Dichotomy, pref string, pci int) string {
	switch {
	case d == itembank.DichotomySN && pref == "S" && pci == 1:
		return "N"
	case d == itembank.DichotomyTF && pref == "T" && pci <= 2:
		return "F"
	case d == itembank.DichotomyJP && pref == "J" && pci == 1:
		return "P"
	}
	return pref
}
