package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.imaxinacion.net/aibox/staticenum"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults with overrides", func(t *testing.T) {
		cfg, err := LoadConfig("", map[string]any{"types": []string{"Color"}})
		require.NoError(t, err)

		assert.Equal(t, []string{"Color"}, cfg.Types)
		assert.Equal(t, []string{"."}, cfg.Patterns)
		assert.Equal(t, staticenum.DefaultMaxWindowSize, cfg.MaxWindowSize)
		assert.False(t, cfg.Strict)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "enumgen.yaml")
		content := "types: [Color, Direction]\nmax_window_size: 512\nalignment: 8\nstrict: true\noutput: out.go\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"Color", "Direction"}, cfg.Types)
		assert.Equal(t, 512, cfg.MaxWindowSize)
		assert.Equal(t, staticenum.Config{MaxWindowSize: 512, Alignment: 8}, cfg.WindowConfig())
		assert.True(t, cfg.Strict)
		assert.Equal(t, "out.go", cfg.Output)
	})

	t.Run("Flags override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "enumgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("types: [Color]\nmax_window_size: 512\n"), 0o644))

		cfg, err := LoadConfig(path, map[string]any{"max_window_size": 1024})
		require.NoError(t, err)
		assert.Equal(t, 1024, cfg.MaxWindowSize)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("ENUMGEN_MAX_WINDOW_SIZE", "2048")

		cfg, err := LoadConfig("", map[string]any{"types": []string{"Color"}})
		require.NoError(t, err)
		assert.Equal(t, 2048, cfg.MaxWindowSize)
	})

	t.Run("No types", func(t *testing.T) {
		_, err := LoadConfig("", nil)
		assert.ErrorIs(t, err, ErrNoTypes)
	})

	t.Run("Invalid window", func(t *testing.T) {
		_, err := LoadConfig("", map[string]any{"types": []string{"Color"}, "max_window_size": 0})
		assert.ErrorIs(t, err, staticenum.ErrInvalidWindowSize)

		_, err = LoadConfig("", map[string]any{"types": []string{"Color"}, "max_window_size": 100, "alignment": 8})
		assert.ErrorIs(t, err, staticenum.ErrInvalidWindowSize)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), map[string]any{"types": []string{"Color"}})
		assert.Error(t, err)
	})
}
