package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/go-htn/htngo/application/actor"
	"github.com/go-htn/htngo/application/planner"
	"github.com/go-htn/htngo/domain/todo"
	"github.com/go-htn/htngo/infrastructure/config"
)

// runOptions holds options for the run command.
type runOptions struct {
	scenarioPath string
	act          bool
	verbose      int
	jsonOutput   bool
	watch        bool
	ledgerPath   string
}

// newRunCmd creates the run command.
func (a *App) newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Plan (and optionally execute) a scenario",
		Long: `Load a scenario file and its named built-in domain, then run find_plan.

With --act, run_lazy_lookahead drives the plan through the domain's
commands, re-planning on command failure, instead of just printing the
plan.

Examples:
  htn run scenario.yaml
  htn run --act scenario.yaml
  htn run --json scenario.yaml
  htn run --watch scenario.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.scenarioPath = args[0]
			if opts.watch {
				return a.watchScenario(cmd.Context(), opts)
			}
			return a.runScenario(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.act, "act", false, "execute the plan via run_lazy_lookahead instead of only printing it")
	cmd.Flags().IntVarP(&opts.verbose, "verbose", "v", -1, "override the scenario's run.verbose setting")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output the result as JSON")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "re-run planning whenever the scenario file changes")
	cmd.Flags().StringVar(&opts.ledgerPath, "ledger", "", "write the actor's run ledger as JSON to this path (requires --act)")

	return cmd
}

func (a *App) runScenario(ctx context.Context, opts *runOptions) error {
	loader := config.NewLoader()
	cfg, err := loader.LoadFile(opts.scenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	dom, ok := lookupDomain(cfg.Domain)
	if !ok {
		return fmt.Errorf("%w: %s (known: %s)", config.ErrUnknownDomain, cfg.Domain, strings.Join(domainNames(), ", "))
	}

	b := config.NewBuilder(cfg)
	state := b.BuildState()
	items, err := b.BuildTodoList()
	if err != nil {
		return fmt.Errorf("building goal: %w", err)
	}

	plannerOpts := b.BuildPlannerOptions()
	if opts.verbose >= 0 {
		plannerOpts.Verbose = opts.verbose
	}

	if opts.act {
		actorOpts := b.BuildActorOptions()
		actorOpts.Planner = plannerOpts
		a1 := actor.New(actor.WithOptions(actorOpts))

		result, err := a1.RunLazyLookahead(ctx, dom, state, items)
		if opts.ledgerPath != "" && result.Ledger != nil {
			if werr := writeLedger(opts.ledgerPath, result.Ledger.Entries()); werr != nil {
				return werr
			}
		}
		if err != nil {
			return fmt.Errorf("run_lazy_lookahead: %w", err)
		}
		return a.printActResult(opts, cfg.Name, result)
	}

	p := planner.New(planner.WithOptions(plannerOpts))
	plan, err := p.Find(ctx, dom, state, items)
	if err != nil {
		return fmt.Errorf("find_plan: %w", err)
	}
	return a.printPlan(opts, cfg.Name, plan)
}

func (a *App) printPlan(opts *runOptions, name string, plan todo.List) error {
	if opts.jsonOutput {
		type step struct {
			Name string `json:"name"`
			Args []any  `json:"args,omitempty"`
		}
		steps := make([]step, 0, len(plan))
		for _, item := range plan {
			steps = append(steps, step{Name: item.Name, Args: item.Args})
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"scenario": name, "plan": steps})
	}

	fmt.Fprintf(a.stdout, "plan for %s (%d steps):\n", name, len(plan))
	for i, item := range plan {
		fmt.Fprintf(a.stdout, "  %d. %s%v\n", i+1, item.Name, item.Args)
	}
	return nil
}

func (a *App) printActResult(opts *runOptions, name string, result actor.Result) error {
	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"scenario": name,
			"run_id":   result.RunID,
			"state":    result.State.String(),
			"entries":  result.Ledger.Count(),
		})
	}

	fmt.Fprintf(a.stdout, "run %s completed\n", result.RunID)
	fmt.Fprintf(a.stdout, "  scenario: %s\n", name)
	fmt.Fprintf(a.stdout, "  final state: %s\n", result.State)
	fmt.Fprintf(a.stdout, "  ledger entries: %d\n", result.Ledger.Count())
	return nil
}

// watchScenario re-runs runScenario every time the scenario file changes,
// grounded on the teacher's fsnotify-backed fs_watch tool: a single
// watcher on the scenario file itself, reacting to Write and Create events.
func (a *App) watchScenario(ctx context.Context, opts *runOptions) error {
	if err := a.runScenario(ctx, opts); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(opts.scenarioPath); err != nil {
		return fmt.Errorf("watching %s: %w", opts.scenarioPath, err)
	}

	fmt.Fprintf(a.stdout, "watching %s for changes (ctrl-c to stop)...\n", opts.scenarioPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			time.Sleep(50 * time.Millisecond) // let the writer finish
			fmt.Fprintf(a.stdout, "\n--- %s changed, re-planning ---\n", opts.scenarioPath)
			if err := a.runScenario(ctx, opts); err != nil {
				fmt.Fprintf(a.stderr, "error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(a.stderr, "watch error: %v\n", err)
		}
	}
}
