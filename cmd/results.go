package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/typeprint/internal/report"
	"github.com/abhisek/typeprint/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List persisted assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		records, err := st.ResultRepo().History(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No results yet. Run typeprint to take the questionnaire.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %-40s  %8s  %7s\n",
			"Finished", "Respondent", "Result", "Answered", "Skipped")
		fmt.Println(strings.Repeat("─", 100))

		for _, rec := range records {
			who := rec.Respondent
			if who == "" {
				who = "anonymous"
			}
			if len(who) > 16 {
				who = who[:16]
			}
			fmt.Printf("%-19s  %-16s  %-40s  %8d  %7d\n",
				rec.FinishedAt.Local().Format("2006-01-02 15:04:05"),
				who,
				report.Headline(rec.Result),
				rec.Answered,
				rec.Omitted,
			)
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().IntP("limit", "n", 20, "Number of results to show (0 = all)")
}
