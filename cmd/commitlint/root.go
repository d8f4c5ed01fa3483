package main

import (
	"context"

	"github.com/mgmacri/pool-maintenance-app/internal/logger"
	"github.com/mgmacri/pool-maintenance-app/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AppName - the name of the application.
const AppName = "commitlint-config"

type ctxKeyLogger struct{}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:     AppName,
		Short:   "Validate, resolve and render the repository's commitlint configuration",
		Version: version.Info().String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			log, err := logger.New("development", level)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), ctxKeyLogger{}, log))
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newValidateCmd(),
		newResolveCmd(),
		newRenderCmd(),
	)

	return root
}

func loggerFrom(cmd *cobra.Command) *zap.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if l, ok := ctx.Value(ctxKeyLogger{}).(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
