package main

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		format string
		strict bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the built-in policy as commitlint.config.js, JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := commitlint.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg := commitlint.ForScopePolicy(strict)

			if output == "" || output == "-" {
				return commitlint.Render(cmd.OutOrStdout(), cfg, f)
			}
			return writeAtomic(output, func(w io.Writer) error {
				return commitlint.Render(w, cfg, f)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "js", "output format: js, json or yaml")
	cmd.Flags().BoolVar(&strict, "strict-scope", false, "require a scope on every commit")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")

	return cmd
}

// writeAtomic replaces path with a single rename.
func writeAtomic(path string, write func(io.Writer) error) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer pf.Cleanup() //nolint:errcheck

	if err := write(pf); err != nil {
		return err
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
