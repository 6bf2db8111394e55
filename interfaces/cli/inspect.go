package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-htn/htngo/domain/ledger"
)

// inspectOptions holds options for the inspect command.
type inspectOptions struct {
	ledgerPath string
	outputJSON bool
	entryType  string
}

// newInspectCmd creates the inspect command.
func (a *App) newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <ledger.json>",
		Short: "Pretty-print a recorded run ledger",
		Long: `Inspect a run ledger written by "htn run --act --ledger <file>": the
append-only record of run_started, plan_found/plan_not_found,
command_executed/command_failed, run outcome, and state-transition entries
run_lazy_lookahead produced during that run.

Examples:
  htn inspect run.ledger.json
  htn inspect --json run.ledger.json
  htn inspect --type command_failed run.ledger.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ledgerPath = args[0]
			return a.inspectLedger(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.outputJSON, "json", false, "output the ledger entries as JSON")
	cmd.Flags().StringVar(&opts.entryType, "type", "", "show only entries of this type (e.g. command_failed)")

	return cmd
}

func (a *App) inspectLedger(opts *inspectOptions) error {
	entries, err := readLedger(opts.ledgerPath)
	if err != nil {
		return fmt.Errorf("reading ledger: %w", err)
	}

	if opts.entryType != "" {
		filtered := make([]ledger.Entry, 0, len(entries))
		for _, e := range entries {
			if string(e.Type) == opts.entryType {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if opts.outputJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		fmt.Fprintf(a.stdout, "[%s] %-20s state=%-10s run=%s\n",
			e.Timestamp.Format("15:04:05.000"), e.Type, e.State, e.RunID)
		if e.Details != nil {
			fmt.Fprintf(a.stdout, "    %s\n", string(e.Details))
		}
	}
	fmt.Fprintf(a.stdout, "\n%d entries\n", len(entries))
	return nil
}

// writeLedger persists a run's ledger entries as a JSON array, the CLI's
// own bridge between an in-memory *ledger.Ledger and the "inspect" command
// — the planner/actor library itself never writes to disk (spec.md §1).
func writeLedger(path string, entries []ledger.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ledger file: %w", err)
	}
	return nil
}

func readLedger(path string) ([]ledger.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []ledger.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing ledger JSON: %w", err)
	}
	return entries, nil
}
