package bootstrap

import (
	"fmt"

	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
)

// LoadPolicy returns the commit policy the service publishes: the file at
// path when set, otherwise the built-in variant selected by strictScope.
func LoadPolicy(path string, strictScope bool) (commitlint.Config, error) {
	if path == "" {
		return commitlint.ForScopePolicy(strictScope), nil
	}
	cfg, err := commitlint.Load(path)
	if err != nil {
		return commitlint.Config{}, fmt.Errorf("load commit policy: %w", err)
	}
	return cfg, nil
}
