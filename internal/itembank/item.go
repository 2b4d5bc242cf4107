package itembank

// Dichotomy is one of the four preference axes. Every item belongs to
// exactly one dichotomy, and every scored result carries one letter
// per dichotomy.
type Dichotomy string

const (
	DichotomyEI Dichotomy = "E-I"
	DichotomySN Dichotomy = "S-N"
	DichotomyTF Dichotomy = "T-F"
	DichotomyJP Dichotomy = "J-P"
)

// AllDichotomies returns the four dichotomies in scoring order.
func AllDichotomies() []Dichotomy {
	return []Dichotomy{DichotomyEI, DichotomySN, DichotomyTF, DichotomyJP}
}

// PositivePole returns the letter reported when theta is positive.
func (d Dichotomy) PositivePole() string {
	switch d {
	case DichotomyEI:
		return "E"
	case DichotomySN:
		return "S"
	case DichotomyTF:
		return "T"
	case DichotomyJP:
		return "J"
	default:
		return "?"
	}
}

// NegativePole returns the letter reported when theta is negative.
func (d Dichotomy) NegativePole() string {
	switch d {
	case DichotomyEI:
		return "I"
	case DichotomySN:
		return "N"
	case DichotomyTF:
		return "F"
	case DichotomyJP:
		return "P"
	default:
		return "?"
	}
}

// TieBreaker returns the letter assigned when theta is exactly zero.
// Always the negative pole.
func (d Dichotomy) TieBreaker() string {
	return d.NegativePole()
}

// DisplayName returns a human-readable name for a dichotomy.
func (d Dichotomy) DisplayName() string {
	switch d {
	case DichotomyEI:
		return "Extraversion – Introversion"
	case DichotomySN:
		return "Sensing – Intuition"
	case DichotomyTF:
		return "Thinking – Feeling"
	case DichotomyJP:
		return "Judging – Perceiving"
	default:
		return string(d)
	}
}

// Option is one of the two forced choices offered by an item.
// Exactly one option per item is the positive pole of its dichotomy.
type Option struct {
	Key      string // "A" or "B"
	Text     string
	Positive bool
}

// Item is one calibrated questionnaire item: the question shown to the
// respondent fused with its 2PL calibration constants. Item ids are
// 0-based internally; host surfaces (the questionnaire screen, answer
// files) number questions 1-based, so question N maps to item N-1.
type Item struct {
	ID        int
	Dichotomy Dichotomy
	A         float64 // discrimination, > 0
	B         float64 // difficulty / location
	Stem      string
	OptionA   Option
	OptionB   Option
}

// Options returns the item's two options in display order.
func (it Item) Options() [2]Option {
	return [2]Option{it.OptionA, it.OptionB}
}

// ScoreKey returns the scored direction for a choice key:
// 1 for the positive-pole option, 0 for the other.
// ok is false when the key matches neither option.
func (it Item) ScoreKey(choiceKey string) (u int, ok bool) {
	switch choiceKey {
	case it.OptionA.Key:
		if it.OptionA.Positive {
			return 1, true
		}
		return 0, true
	case it.OptionB.Key:
		if it.OptionB.Positive {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
