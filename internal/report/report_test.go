package report

import (
	"strings"
	"testing"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/scoring"
	"github.com/abhisek/typeprint/internal/session"
)

func TestProfilesCoverAllSixteenTypes(t *testing.T) {
	if len(profiles) != 16 {
		t.Fatalf("profiles = %d, want 16", len(profiles))
	}
	for code, p := range profiles {
		if p.Code != code {
			t.Errorf("%s: code field = %s", code, p.Code)
		}
		if p.Title == "" || p.Summary == "" {
			t.Errorf("%s: empty title or summary", code)
		}
		if len(p.Traits) == 0 {
			t.Errorf("%s: no traits", code)
		}
	}
}

func TestProfileFor(t *testing.T) {
	if _, ok := ProfileFor("INFP"); !ok {
		t.Error("INFP profile missing")
	}
	if _, ok := ProfileFor("XXXX"); ok {
		t.Error("unknown code should not resolve")
	}
}

func TestClarityBar(t *testing.T) {
	tests := []struct {
		pci    int
		filled int
	}{
		{0, 0},
		{1, 1},
		{15, 15},
		{30, 30},
		{45, 30}, // clamped
		{-2, 0},  // clamped
	}
	for _, tt := range tests {
		bar := ClarityBar(tt.pci)
		if got := strings.Count(bar, "#"); got != tt.filled {
			t.Errorf("ClarityBar(%d): %d filled cells, want %d", tt.pci, got, tt.filled)
		}
		if len([]rune(bar)) != clarityBarWidth+2 {
			t.Errorf("ClarityBar(%d): width %d, want %d", tt.pci, len([]rune(bar)), clarityBarWidth+2)
		}
	}
}

func TestRender(t *testing.T) {
	s := session.New(itembank.Default(), "test")
	out, err := s.Complete(scoring.NewEngine(itembank.Default()))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	text := Render(out)
	for _, want := range []string{
		"Reported type: INFP",
		"The Healer",
		"Extraversion – Introversion",
		"Answered 0 of 93 questions.",
		"may be unreliable",
		"Slight clarity",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered report missing %q:\n%s", want, text)
		}
	}
}

func TestHeadline(t *testing.T) {
	res := &scoring.Result{
		TypeCode:    "ESTJ",
		Dichotomies: map[itembank.Dichotomy]scoring.DichotomyResult{},
	}
	for _, d := range itembank.AllDichotomies() {
		res.Dichotomies[d] = scoring.ResolvePreference(d, 3)
	}

	got := Headline(res)
	if !strings.HasPrefix(got, "ESTJ (") {
		t.Errorf("headline = %q", got)
	}
	if !strings.Contains(got, "E Very Clear") {
		t.Errorf("headline = %q, want per-dichotomy clarity", got)
	}
}
