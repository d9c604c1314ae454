package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/directory/pkg/types"
)

var entriesCSV = filepath.Join("testdata", "entries.csv")

// runCLI executes the root command with args and an isolated config
// directory, returning stdout, stderr and the command error.
func runCLI(t *testing.T, configDir string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DIRECTORY_SEARCH_STRATEGY", "")
	t.Setenv("DIRECTORY_IMPORT_FILES", "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "directory v"+Version)
	assert.Contains(t, stdout, modulePath)
}

func TestCount(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "count", "-f", entriesCSV)
	require.NoError(t, err)
	assert.Equal(t, "5\n", stdout)

	stdout, _, err = runCLI(t, t.TempDir(), "count", "-f", entriesCSV, "-f", filepath.Join("testdata", "entries_2.csv"))
	require.NoError(t, err)
	assert.Equal(t, "8\n", stdout)
}

func TestList(t *testing.T) {
	t.Run("table output in import order", func(t *testing.T) {
		stdout, _, err := runCLI(t, t.TempDir(), "list", "-f", entriesCSV)
		require.NoError(t, err)
		assert.Contains(t, stdout, "NAME")
		assert.Contains(t, stdout, "bill@blocmail.com")
		assert.Contains(t, stdout, "Total: 5 contact(s)")
	})

	t.Run("json output", func(t *testing.T) {
		stdout, _, err := runCLI(t, t.TempDir(), "list", "-f", entriesCSV, "--json")
		require.NoError(t, err)

		var got []types.Contact
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		require.Len(t, got, 5)
		assert.Equal(t, types.NewContact("Bill", "555-555-4854", "bill@blocmail.com"), got[0])
		assert.Equal(t, types.NewContact("Sussie", "555-555-2036", "sussie@blocmail.com"), got[4])
	})

	t.Run("sorted output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "unsorted.csv")
		require.NoError(t, os.WriteFile(path, []byte("Sally,1,s@x\nBill,2,b@x\n"), 0o644))

		stdout, _, err := runCLI(t, t.TempDir(), "list", "-f", path, "--sorted", "--json")
		require.NoError(t, err)

		var got []types.Contact
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Bill", got[0].Name)
		assert.Equal(t, "Sally", got[1].Name)
	})

	t.Run("no import files is an error", func(t *testing.T) {
		_, _, err := runCLI(t, t.TempDir(), "list")
		require.ErrorIs(t, err, errNoImportFiles)
	})
}

func TestSearch(t *testing.T) {
	for _, strategy := range []string{types.StrategyLinear, types.StrategyBinary} {
		t.Run(strategy+" finds Bill", func(t *testing.T) {
			stdout, _, err := runCLI(t, t.TempDir(), "search", "-f", entriesCSV, "--strategy", strategy, "--json", "Bill")
			require.NoError(t, err)

			var got types.Contact
			require.NoError(t, json.Unmarshal([]byte(stdout), &got))
			assert.Equal(t, types.NewContact("Bill", "555-555-4854", "bill@blocmail.com"), got)
		})

		t.Run(strategy+" misses Billy", func(t *testing.T) {
			_, _, err := runCLI(t, t.TempDir(), "search", "-f", entriesCSV, "--strategy", strategy, "Billy")
			require.ErrorIs(t, err, types.ErrNotFound)
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}

	t.Run("unknown strategy", func(t *testing.T) {
		_, _, err := runCLI(t, t.TempDir(), "search", "-f", entriesCSV, "--strategy", "fuzzy", "Bill")
		require.ErrorIs(t, err, types.ErrStrategyUnknown)
	})

	t.Run("verbose logs the search", func(t *testing.T) {
		_, stderr, err := runCLI(t, t.TempDir(), "search", "-v", "-f", entriesCSV, "Joe")
		require.NoError(t, err)
		assert.Contains(t, stderr, "strategy=binary")
		assert.Contains(t, stderr, "import complete")
	})
}

func TestRemove(t *testing.T) {
	t.Run("match is removed", func(t *testing.T) {
		stdout, _, err := runCLI(t, t.TempDir(), "remove", "-f", entriesCSV, "--json", "Bob", "555-555-5415", "bob@blocmail.com")
		require.NoError(t, err)

		var got struct {
			Removed bool            `json:"removed"`
			Entries []types.Contact `json:"entries"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.True(t, got.Removed)
		assert.Len(t, got.Entries, 4)
		for _, c := range got.Entries {
			assert.NotEqual(t, "Bob", c.Name)
		}
	})

	t.Run("miss is not an error", func(t *testing.T) {
		stdout, _, err := runCLI(t, t.TempDir(), "remove", "-f", entriesCSV, "Bob", "000", "bob@blocmail.com")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No matching contact")
		assert.Contains(t, stdout, "Total: 5 contact(s)")
	})
}

func TestImportFailureExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Bill,555-555-4854\n"), 0o644))

	_, _, err := runCLI(t, t.TempDir(), "count", "-f", path)
	require.ErrorIs(t, err, types.ErrImportFailure)
	assert.ErrorIs(t, err, types.ErrMalformedRow)
	assert.Equal(t, exitSysError, exitCode(err))

	_, _, err = runCLI(t, t.TempDir(), "count", "-f", filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, types.ErrImportFailure)
}

func TestInitAndConfig(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "cfg")
	abs, err := filepath.Abs(entriesCSV)
	require.NoError(t, err)

	stdout, _, err := runCLI(t, configDir, "init", "-f", abs)
	require.NoError(t, err)
	assert.Contains(t, stdout, "initialized successfully")

	data, err := os.ReadFile(filepath.Join(configDir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(data), "import_files:")
	assert.Contains(t, string(data), "search_strategy: binary")

	t.Run("init is idempotent", func(t *testing.T) {
		stdout, _, err := runCLI(t, configDir, "init")
		require.NoError(t, err)
		assert.Contains(t, stdout, "already initialized")
	})

	t.Run("commands use import_files from config", func(t *testing.T) {
		stdout, _, err := runCLI(t, configDir, "count")
		require.NoError(t, err)
		assert.Equal(t, "5\n", stdout)
	})
}

func TestConfigRelativeImportFile(t *testing.T) {
	configDir := t.TempDir()
	data, err := os.ReadFile(entriesCSV)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "book.csv"), data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt),
		[]byte("import_files:\n  - book.csv\nsearch_strategy: linear\n"), 0o644))

	_, stderr, err := runCLI(t, configDir, "search", "-v", "Sally")
	require.NoError(t, err)
	assert.Contains(t, stderr, "strategy=linear")
}

func TestConfigInvalidStrategy(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt),
		[]byte("search_strategy: fuzzy\n"), 0o644))

	_, _, err := runCLI(t, configDir, "count", "-f", entriesCSV)
	require.ErrorIs(t, err, types.ErrStrategyUnknown)
}

func TestSearchStrategyFromEnv(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv("DIRECTORY_SEARCH_STRATEGY", types.StrategyLinear)

	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"--config-dir", t.TempDir(), "search", "-v", "-f", entriesCSV, "Sally"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "strategy=linear")

	t.Run("flag wins over env", func(t *testing.T) {
		stderr.Reset()
		root := NewRootCmd()
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		root.SetArgs([]string{"--config-dir", t.TempDir(), "search", "-v", "-f", entriesCSV, "--strategy", "binary", "Sally"})
		require.NoError(t, root.Execute())
		assert.Contains(t, stderr.String(), "strategy=binary")
	})
}
