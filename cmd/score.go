package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/cobra"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/report"
	"github.com/abhisek/typeprint/internal/scoring"
	"github.com/abhisek/typeprint/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers.json>",
	Short: "Score an answer file without the TUI",
	Long: `Score reads a JSON answer file and prints the scored result.

The file maps 1-based question numbers to option keys:

  {"1": "A", "2": "B", "5": "A"}

Unlisted questions count as omissions. Omissions are allowed; fifteen
or more make the result unreliable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		respondent, _ := cmd.Flags().GetString("respondent")

		answers, err := readAnswerFile(args[0])
		if err != nil {
			return err
		}

		bank := itembank.Default()
		result, err := scoring.NewEngine(bank).Score(answers)
		if err != nil {
			return fmt.Errorf("score: %w", err)
		}

		outcome := &session.Outcome{
			Respondent: respondent,
			Result:     result,
			Answered:   len(answers),
			Omitted:    bank.Len() - len(answers),
			FinishedAt: time.Now(),
		}

		if asJSON {
			return printResultJSON(cmd, outcome)
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Render(outcome))
		return nil
	},
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
	scoreCmd.Flags().String("respondent", "", "Respondent name for the report")
}

// answerFileSchema validates the answer file shape: 1-based question
// numbers mapped to option keys.
var answerFileSchema = map[string]any{
	"type": "object",
	"patternProperties": map[string]any{
		"^([1-9]|[1-8][0-9]|9[0-3])$": map[string]any{
			"enum": []any{"A", "B"},
		},
	},
	"additionalProperties": false,
}

// readAnswerFile loads and validates an answer file, returning the
// answers keyed by 0-based item id.
func readAnswerFile(path string) (scoring.AnswerSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse answer file: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema://answers.json", answerFileSchema); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema://answers.json")
	if err != nil {
		return nil, fmt.Errorf("compile answer schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("invalid answer file: %w", err)
	}

	var byNumber map[string]string
	if err := json.Unmarshal(raw, &byNumber); err != nil {
		return nil, fmt.Errorf("parse answer file: %w", err)
	}

	answers := make(scoring.AnswerSet, len(byNumber))
	for num, key := range byNumber {
		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("invalid question number %q", num)
		}
		answers[n-1] = key
	}
	return answers, nil
}

// scoredOutput is the JSON shape printed by score --json.
type scoredOutput struct {
	Respondent  string                    `json:"respondent,omitempty"`
	TypeCode    string                    `json:"type_code"`
	Dichotomies []scoring.DichotomyResult `json:"dichotomies"`
	Answered    int                       `json:"answered"`
	Omitted     int                       `json:"omitted"`
	Unreliable  bool                      `json:"unreliable"`
}

func printResultJSON(cmd *cobra.Command, outcome *session.Outcome) error {
	out := scoredOutput{
		Respondent:  outcome.Respondent,
		TypeCode:    outcome.Result.TypeCode,
		Dichotomies: outcome.Result.Ordered(),
		Answered:    outcome.Answered,
		Omitted:     outcome.Omitted,
		Unreliable:  outcome.ManyOmissions(),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
