package main

import (
	"os"

	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadSource reads the config named by args, or discovers one in dir.
func loadSource(cmd *cobra.Command, args []string, dir string) (string, commitlint.Config, error) {
	log := loggerFrom(cmd)

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", commitlint.Config{}, err
			}
			dir = wd
		}
		found, err := commitlint.Discover(dir)
		if err != nil {
			return "", commitlint.Config{}, err
		}
		path = found
	}

	log.Debug("loading commitlint config", zap.String("path", path))
	cfg, err := commitlint.Load(path)
	if err != nil {
		return path, commitlint.Config{}, err
	}
	return path, cfg, nil
}
