package main

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var (
		dir         string
		enabledOnly bool
		builtin     bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Print the effective rules after applying presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := commitlint.ForScopePolicy(strict)
			if !builtin {
				_, loaded, err := loadSource(cmd, args, dir)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			rules, err := commitlint.Resolve(cfg)
			if err != nil {
				return err
			}
			if enabledOnly {
				rules = commitlint.Enabled(rules)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RULE\tSEVERITY\tWHEN\tVALUE")
			for _, name := range slices.Sorted(maps.Keys(rules)) {
				r := rules[name]
				value := ""
				if r.Value != nil {
					value = fmt.Sprint(r.Value)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, r.Level, r.When, value)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", "directory to search when no path is given")
	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only list rules whose severity is not off")
	cmd.Flags().BoolVar(&builtin, "builtin", false, "resolve the built-in policy instead of a file")
	cmd.Flags().BoolVar(&strict, "strict-scope", false, "with --builtin, use the variant that requires a scope")

	return cmd
}
