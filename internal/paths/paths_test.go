package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/queryboard", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "queryboard"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})
}

func TestResolveDatabaseFile(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDatabaseFile, "/tmp/env.db")
		got, err := ResolveDatabaseFile("/tmp/flag.db", "/tmp/config.db")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag.db", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDatabaseFile, "/tmp/env.db")
		got, err := ResolveDatabaseFile("", "/tmp/config.db")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config.db", got)
	})

	t.Run("env is the last fallback", func(t *testing.T) {
		t.Setenv(EnvDatabaseFile, "/tmp/env.db")
		got, err := ResolveDatabaseFile("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env.db", got)
	})

	t.Run("nothing set is an error", func(t *testing.T) {
		t.Setenv(EnvDatabaseFile, "")
		_, err := ResolveDatabaseFile("", "")
		assert.ErrorIs(t, err, ErrDatabaseFileUnset)
	})
}
