package scoring

import (
	"testing"

	"github.com/abhisek/typeprint/internal/itembank"
)

func TestResolvePreferenceSignRule(t *testing.T) {
	tests := []struct {
		d     itembank.Dichotomy
		theta float64
		want  string
	}{
		{itembank.DichotomyEI, 1.5, "E"},
		{itembank.DichotomyEI, -1.5, "I"},
		{itembank.DichotomyEI, 0, "I"}, // tie-breaker is the low pole
		{itembank.DichotomySN, 2.0, "S"},
		{itembank.DichotomySN, -2.0, "N"},
		{itembank.DichotomySN, 0, "N"},
		{itembank.DichotomyTF, 1.0, "T"},
		{itembank.DichotomyTF, -1.0, "F"},
		{itembank.DichotomyTF, 0, "F"},
		{itembank.DichotomyJP, 0.9, "J"},
		{itembank.DichotomyJP, -0.9, "P"},
		{itembank.DichotomyJP, 0, "P"},
	}
	for _, tt := range tests {
		got := ResolvePreference(tt.d, tt.theta)
		if got.Preference != tt.want {
			t.Errorf("%s theta=%g: preference = %s, want %s", tt.d, tt.theta, got.Preference, tt.want)
		}
	}
}

func TestClarityIndexBoundaries(t *testing.T) {
	tests := []struct {
		theta   float64
		wantPCI int
		wantPCC Clarity
	}{
		{0, 1, ClaritySlight}, // floor: clarity is never zero
		{0.5, 5, ClaritySlight},
		{0.6, 6, ClarityModerate},
		{1.5, 15, ClarityModerate},
		{1.6, 16, ClarityClear},
		{2.5, 25, ClarityClear},
		{2.6, 26, ClarityVeryClear},
		{3.0, 30, ClarityVeryClear},
	}
	for _, tt := range tests {
		// E-I has no midpoint rule, so the index and category come
		// through unadjusted on both sides of zero.
		for _, theta := range []float64{tt.theta, -tt.theta} {
			got := ResolvePreference(itembank.DichotomyEI, theta)
			if got.PCI != tt.wantPCI {
				t.Errorf("theta=%g: pci = %d, want %d", theta, got.PCI, tt.wantPCI)
			}
			if got.PCC != tt.wantPCC {
				t.Errorf("theta=%g: pcc = %s, want %s", theta, got.PCC, tt.wantPCC)
			}
		}
	}
}

func TestMidpointAdjustment(t *testing.T) {
	tests := []struct {
		name  string
		d     itembank.Dichotomy
		theta float64
		want  string
	}{
		// E-I never flips, even at minimum clarity.
		{"E at pci 1 stays E", itembank.DichotomyEI, 0.1, "E"},
		{"I at pci 1 stays I", itembank.DichotomyEI, -0.1, "I"},

		// S flips to N only at pci == 1.
		{"S at pci 1 flips to N", itembank.DichotomySN, 0.1, "N"},
		{"S at pci 2 stays S", itembank.DichotomySN, 0.2, "S"},
		{"N at pci 1 stays N", itembank.DichotomySN, -0.1, "N"},

		// T flips to F at pci <= 2.
		{"T at pci 1 flips to F", itembank.DichotomyTF, 0.1, "F"},
		{"T at pci 2 flips to F", itembank.DichotomyTF, 0.2, "F"},
		{"T at pci 3 stays T", itembank.DichotomyTF, 0.3, "T"},
		{"F at pci 1 stays F", itembank.DichotomyTF, -0.1, "F"},
		{"F at pci 2 stays F", itembank.DichotomyTF, -0.2, "F"},

		// J flips to P only at pci == 1.
		{"J at pci 1 flips to P", itembank.DichotomyJP, 0.1, "P"},
		{"J at pci 2 stays J", itembank.DichotomyJP, 0.2, "J"},
		{"P at pci 1 stays P", itembank.DichotomyJP, -0.1, "P"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePreference(tt.d, tt.theta)
			if got.Preference != tt.want {
				t.Errorf("preference = %s, want %s (pci %d)", got.Preference, tt.want, got.PCI)
			}
		})
	}
}

func TestThetaRoundedForReporting(t *testing.T) {
	got := ResolvePreference(itembank.DichotomyEI, 1.23456)
	if got.Theta != 1.23 {
		t.Errorf("theta = %g, want 1.23", got.Theta)
	}
	got = ResolvePreference(itembank.DichotomyEI, -2.999)
	if got.Theta != -3.0 {
		t.Errorf("theta = %g, want -3", got.Theta)
	}
}
