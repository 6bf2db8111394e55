package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newListDomainsCmd creates the list-domains command.
func (a *App) newListDomainsCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list-domains",
		Short: "List the built-in example domains",
		Long: `List the names a scenario file's domain: field may reference, along with
the actions, tasks, unigoal variables, and multigoal methods each one
registers.

Examples:
  htn list-domains
  htn list-domains -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listDomains(verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show registered actions/tasks/unigoals/multigoals")

	return cmd
}

func (a *App) listDomains(verbose bool) error {
	names := domainNames()
	fmt.Fprintf(a.stdout, "Built-in domains (%d):\n", len(names))

	for _, name := range names {
		dom, _ := lookupDomain(name)
		fmt.Fprintf(a.stdout, "\n  %s\n", name)
		if !verbose {
			continue
		}

		actions := dom.ActionNames()
		sort.Strings(actions)
		fmt.Fprintf(a.stdout, "    actions: %v\n", actions)

		tasks := dom.TaskNames()
		sort.Strings(tasks)
		fmt.Fprintf(a.stdout, "    tasks: %v\n", tasks)

		unigoals := dom.UnigoalVars()
		sort.Strings(unigoals)
		for _, v := range unigoals {
			fmt.Fprintf(a.stdout, "    unigoal %s methods (try order): %v\n", v, dom.UnigoalMethodNames(v))
		}

		if mgs := dom.MultigoalMethodNames(); len(mgs) > 0 {
			fmt.Fprintf(a.stdout, "    multigoal methods (try order): %v\n", mgs)
		}
	}

	return nil
}
