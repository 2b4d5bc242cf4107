package scoring

import (
	"reflect"
	"testing"

	"github.com/abhisek/typeprint/internal/itembank"
)

func testEngine() *Engine {
	return NewEngine(itembank.Default())
}

// positiveChoice returns the option key that scores toward the
// positive pole of the item's dichotomy.
func positiveChoice(it itembank.Item) string {
	if it.OptionA.Positive {
		return it.OptionA.Key
	}
	return it.OptionB.Key
}

func negativeChoice(it itembank.Item) string {
	if it.OptionA.Positive {
		return it.OptionB.Key
	}
	return it.OptionA.Key
}

func TestScoreEmptyAnswerSet(t *testing.T) {
	res, err := testEngine().Score(AnswerSet{})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	// No information on any axis: every dichotomy falls back to its
	// tie-breaker letter at minimum clarity.
	if res.TypeCode != "INFP" {
		t.Errorf("type code = %s, want INFP", res.TypeCode)
	}
	for _, d := range itembank.AllDichotomies() {
		dr := res.Dichotomies[d]
		if dr.Theta != 0 {
			t.Errorf("%s: theta = %g, want 0", d, dr.Theta)
		}
		if dr.PCI != 1 {
			t.Errorf("%s: pci = %d, want 1", d, dr.PCI)
		}
		if dr.PCC != ClaritySlight {
			t.Errorf("%s: pcc = %s, want Slight", d, dr.PCC)
		}
		if dr.Preference != d.TieBreaker() {
			t.Errorf("%s: preference = %s, want %s", d, dr.Preference, d.TieBreaker())
		}
	}
}

func TestScoreAllPositiveOneDichotomy(t *testing.T) {
	bank := itembank.Default()
	answers := AnswerSet{}
	for _, it := range bank.ByDichotomy(itembank.DichotomyEI) {
		answers[it.ID] = positiveChoice(it)
	}

	res, err := testEngine().Score(answers)
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	ei := res.Dichotomies[itembank.DichotomyEI]
	if ei.Preference != "E" {
		t.Errorf("preference = %s, want E", ei.Preference)
	}
	if ei.PCC != ClarityVeryClear {
		t.Errorf("pcc = %s, want Very Clear (pci %d)", ei.PCC, ei.PCI)
	}
	if ei.Theta < 2.5 {
		t.Errorf("theta = %g, want near upper bound", ei.Theta)
	}

	// The other axes were untouched.
	if res.TypeCode != "ENFP" {
		t.Errorf("type code = %s, want ENFP", res.TypeCode)
	}
}

func TestScoreAllNegativeOneDichotomy(t *testing.T) {
	bank := itembank.Default()
	answers := AnswerSet{}
	for _, it := range bank.ByDichotomy(itembank.DichotomyJP) {
		answers[it.ID] = negativeChoice(it)
	}

	res, err := testEngine().Score(answers)
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	jp := res.Dichotomies[itembank.DichotomyJP]
	if jp.Preference != "P" {
		t.Errorf("preference = %s, want P", jp.Preference)
	}
	if jp.Theta > -2.5 {
		t.Errorf("theta = %g, want near lower bound", jp.Theta)
	}
}

func TestScoreDeterministic(t *testing.T) {
	bank := itembank.Default()
	answers := AnswerSet{}
	for i, it := range bank.Items() {
		if i%3 == 0 {
			continue // leave some omissions
		}
		if i%2 == 0 {
			answers[it.ID] = positiveChoice(it)
		} else {
			answers[it.ID] = negativeChoice(it)
		}
	}

	eng := testEngine()
	first, err := eng.Score(answers)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for range 5 {
		again, err := eng.Score(answers)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("repeated scoring produced different results")
		}
	}
}

func TestScoreThetaAlwaysInRange(t *testing.T) {
	bank := itembank.Default()
	answers := AnswerSet{}
	for _, it := range bank.Items() {
		answers[it.ID] = positiveChoice(it)
	}

	res, err := testEngine().Score(answers)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for d, dr := range res.Dichotomies {
		if dr.Theta < ThetaMin || dr.Theta > ThetaMax {
			t.Errorf("%s: theta = %g outside [-3, 3]", d, dr.Theta)
		}
	}
	if res.TypeCode != "ESTJ" {
		t.Errorf("type code = %s, want ESTJ", res.TypeCode)
	}
}

func TestScoreRejectsStrayAnswers(t *testing.T) {
	eng := testEngine()

	if res, err := eng.Score(AnswerSet{999: "A"}); err == nil {
		t.Errorf("expected error for unknown item id, got result %+v", res)
	}
	if _, err := eng.Score(AnswerSet{0: "Z"}); err == nil {
		t.Error("expected error for unknown choice key")
	}
	if res, err := eng.Score(AnswerSet{0: "A", 1: "A", 999: "A"}); err == nil {
		t.Errorf("expected error for stray id among valid answers, got result %+v", res)
	}

	if err := eng.Validate(AnswerSet{0: "A", 92: "B"}); err != nil {
		t.Errorf("valid answers rejected: %v", err)
	}
	if err := eng.Validate(AnswerSet{93: "A"}); err == nil {
		t.Error("expected validation error for out-of-range item")
	}
}

func TestScoreSingleAnswerMidpointInteraction(t *testing.T) {
	// A lone positive S-N response drives theta to the upper clamp:
	// high clarity, no midpoint flip.
	bank := itembank.Default()
	items := bank.ByDichotomy(itembank.DichotomySN)
	answers := AnswerSet{items[0].ID: positiveChoice(items[0])}

	res, err := testEngine().Score(answers)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	sn := res.Dichotomies[itembank.DichotomySN]
	if sn.Preference != "S" {
		t.Errorf("preference = %s, want S (pci %d)", sn.Preference, sn.PCI)
	}
}
