package main

import (
	"fmt"
	"strings"

	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a commitlint config file against the known presets and rules",
		Long: `Check a commitlint config file against the known presets and rules.

Without a path the directory given by --dir (default: the working directory)
is searched for package.json, .commitlintrc, .commitlintrc.{json,yaml,yml},
.commitlintrc.{js,cjs} and commitlint.config.{js,cjs}, in that order.

JavaScript configs are not evaluated. They are accepted only when, ignoring
// comments, they match what "render" writes for the default or the
--strict-scope policy; any other script must be checked with node.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, cfg, err := loadSource(cmd, args, dir)
			if err != nil {
				return err
			}
			if err := commitlint.Validate(cfg); err != nil {
				return fmt.Errorf("%s is invalid:\n%w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (extends %s; %d rules)\n",
				path, strings.Join(cfg.Extends, ", "), len(cfg.Rules))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", "directory to search when no path is given")

	return cmd
}
