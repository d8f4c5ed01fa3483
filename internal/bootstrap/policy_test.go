package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPolicy(t *testing.T) {
	t.Run("built-in default", func(t *testing.T) {
		cfg, err := LoadPolicy("", false)
		require.NoError(t, err)
		assert.Equal(t, commitlint.Default(), cfg)
	})

	t.Run("built-in strict", func(t *testing.T) {
		cfg, err := LoadPolicy("", true)
		require.NoError(t, err)
		assert.Equal(t, commitlint.StrictScope(), cfg)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".commitlintrc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"extends":["@commitlint/config-conventional"],"rules":{"scope-empty":[2,"never"]}}`), 0o644))

		cfg, err := LoadPolicy(path, false)
		require.NoError(t, err)
		assert.Equal(t, commitlint.StrictScope(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPolicy(filepath.Join(t.TempDir(), ".commitlintrc.json"), false)
		assert.Error(t, err)
	})
}
