package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/typeprint/internal/app"
	"github.com/abhisek/typeprint/internal/interpret"
	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/llm"
	"github.com/abhisek/typeprint/internal/scoring"
	"github.com/abhisek/typeprint/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank := itembank.Default()
	opts := app.Options{
		Bank:       bank,
		Engine:     scoring.NewEngine(bank),
		EventRepo:  st.EventRepo(),
		ResultRepo: st.ResultRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Results will be shown without an interpretation.")
	} else {
		opts.Interpreter = interpret.NewService(provider, interpret.DefaultConfig())
	}

	return app.Run(opts)
}
