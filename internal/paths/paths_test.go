package paths

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserConfigDir makes DefaultConfigDir report dir (or err) for the
// duration of the test.
func stubUserConfigDir(t *testing.T, dir string, err error) {
	t.Helper()
	orig := userConfigDir
	t.Cleanup(func() { userConfigDir = orig })
	userConfigDir = func() (string, error) { return dir, err }
}

func TestResolveImportFile(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "cfg")
	abs := filepath.Join(t.TempDir(), "shared", "entries.csv")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"bare file name lands in config dir", "entries.csv", filepath.Join(configDir, "entries.csv")},
		{"nested relative path", filepath.Join("books", "work.jsonl"), filepath.Join(configDir, "books", "work.jsonl")},
		{"parent reference is cleaned", filepath.Join("..", "entries_2.csv"), filepath.Join(filepath.Dir(configDir), "entries_2.csv")},
		{"absolute path is kept", abs, abs},
		{"absolute path is cleaned", filepath.Join(filepath.Dir(abs), ".", "entries.csv"), abs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveImportFile(configDir, tt.path)
			assert.Equal(t, tt.want, got)
			assert.True(t, filepath.IsAbs(got))
		})
	}
}

func TestImportFilesFollowConfigDir(t *testing.T) {
	envDir := t.TempDir()
	userDir := t.TempDir()
	stubUserConfigDir(t, userDir, nil)

	tests := []struct {
		name    string
		flag    string
		env     string
		wantDir string
	}{
		{"flag", filepath.Join(envDir, "from-flag"), envDir, filepath.Join(envDir, "from-flag")},
		{"env", "", envDir, envDir},
		{"user config default", "", "", filepath.Join(userDir, "directory")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.env)

			dir, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, filepath.Join(tt.wantDir, "entries.csv"), ResolveImportFile(dir, "entries.csv"))
		})
	}
}

func TestResolveConfigDirMakesRelativeAbsolute(t *testing.T) {
	t.Setenv(EnvConfigDir, "relative/env")
	fromEnv, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(fromEnv), "expected absolute path, got %s", fromEnv)

	fromFlag, err := ResolveConfigDir("relative/flag")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(fromFlag), "expected absolute path, got %s", fromFlag)
}

func TestDefaultConfigDirError(t *testing.T) {
	stubUserConfigDir(t, "", errors.New("no home"))
	t.Setenv(EnvConfigDir, "")

	_, err := ResolveConfigDir("")
	require.Error(t, err)
}
