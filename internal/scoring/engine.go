package scoring

import (
	"fmt"
	"strings"

	"github.com/abhisek/typeprint/internal/itembank"
)

// AnswerSet is a respondent's sparse answer mapping: 0-based item id
// to chosen option key. An absent entry means the item was omitted.
type AnswerSet map[int]string

// Result is one complete scoring run: the four dichotomy results plus
// the derived four-letter type code.
type Result struct {
	Dichotomies map[itembank.Dichotomy]DichotomyResult `json:"dichotomies"`
	TypeCode    string                                 `json:"type_code"`
}

// Ordered returns the four dichotomy results in scoring order
// (E-I, S-N, T-F, J-P).
func (r *Result) Ordered() []DichotomyResult {
	out := make([]DichotomyResult, 0, 4)
	for _, d := range itembank.AllDichotomies() {
		out = append(out, r.Dichotomies[d])
	}
	return out
}

// Engine scores answer sets against an item bank. It holds no per-call
// state: the same answer set and bank always produce the same result,
// and concurrent Score calls need no coordination.
type Engine struct {
	bank *itembank.Bank
}

// NewEngine creates a scoring engine over the given item bank.
func NewEngine(bank *itembank.Bank) *Engine {
	return &Engine{bank: bank}
}

// Score estimates all four dichotomies, in fixed order, from the
// respondent's answers. Answers referencing an unknown item or choice
// key indicate the item table and the answer surface are out of
// lockstep; that is a configuration error, not a respondent error,
// and fails the whole call rather than corrupting the likelihood sums.
func (e *Engine) Score(answers AnswerSet) (*Result, error) {
	if err := e.Validate(answers); err != nil {
		return nil, err
	}

	res := &Result{
		Dichotomies: make(map[itembank.Dichotomy]DichotomyResult, 4),
	}

	var code strings.Builder
	for _, d := range itembank.AllDichotomies() {
		responses, err := e.keyedResponses(d, answers)
		if err != nil {
			return nil, err
		}
		theta := EstimateTheta(responses)
		dr := ResolvePreference(d, theta)
		res.Dichotomies[d] = dr
		code.WriteString(dr.Preference)
	}

	res.TypeCode = code.String()
	return res, nil
}

// keyedResponses collects the answered subset of a dichotomy's items
// and derives each response's scored direction. Omitted items are
// skipped; they contribute no information.
func (e *Engine) keyedResponses(d itembank.Dichotomy, answers AnswerSet) ([]KeyedResponse, error) {
	items := e.bank.ByDichotomy(d)
	responses := make([]KeyedResponse, 0, len(items))
	for _, it := range items {
		choice, ok := answers[it.ID]
		if !ok {
			continue
		}
		u, err := e.bank.ScoreDirection(it.ID, choice)
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", d, err)
		}
		responses = append(responses, KeyedResponse{A: it.A, B: it.B, U: u})
	}
	return responses, nil
}

// Validate rejects answers that reference items outside the bank.
// The engine tolerates omissions, never stray answers.
func (e *Engine) Validate(answers AnswerSet) error {
	for id, choice := range answers {
		if _, err := e.bank.ScoreDirection(id, choice); err != nil {
			return err
		}
	}
	return nil
}
