package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-htn/htngo/infrastructure/config"
)

// validateOptions holds options for the validate command.
type validateOptions struct {
	scenarioPath string
	strict       bool
}

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Validate a scenario file without planning",
		Long: `Load and structurally validate a scenario file: its initial state, goal
items, run options, and the built-in domain it names, without invoking
find_plan.

Examples:
  htn validate scenario.yaml
  htn validate --strict scenario.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.scenarioPath = args[0]
			return a.validateScenario(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on missing referenced environment variables")

	return cmd
}

func (a *App) validateScenario(opts *validateOptions) error {
	loader := config.NewLoaderWithOptions(config.WithStrictEnv(opts.strict))
	cfg, err := loader.LoadFile(opts.scenarioPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, ok := lookupDomain(cfg.Domain); !ok {
		return fmt.Errorf("validation failed: %w: %s (known: %s)",
			config.ErrUnknownDomain, cfg.Domain, strings.Join(domainNames(), ", "))
	}

	b := config.NewBuilder(cfg)
	if _, err := b.BuildTodoList(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(a.stdout, "scenario valid: %s\n", cfg.Name)
	fmt.Fprintf(a.stdout, "  domain: %s\n", cfg.Domain)
	fmt.Fprintf(a.stdout, "  state variables: %d\n", len(cfg.State))
	fmt.Fprintf(a.stdout, "  goal items: %d\n", len(cfg.Goal))
	fmt.Fprintf(a.stdout, "  max tries: %d, max depth: %d, verify goals: %v\n",
		cfg.Run.MaxTries, cfg.Run.MaxDepth, cfg.Run.VerifyGoals)

	return nil
}
