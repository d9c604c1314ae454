// Package cli implements the directory command-line interface. Each
// invocation builds a fresh in-memory directory from the configured import
// files and runs one command against it.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/directory/internal/paths"
	"github.com/mesh-intelligence/directory/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	files     []string
	jsonMode  bool
	verbose   bool
}

// app carries state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	v         *viper.Viper // settings after defaults, config.yaml and env
	cfg       types.Config
	log       *slog.Logger
}

// NewRootCmd creates the top-level "directory" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "directory",
		Short: "Search and maintain a contact directory",
		Long: `Directory loads contacts from CSV, JSONL or SQLite files into memory and
searches them by exact name, using either a linear scan or a binary search
over a name-sorted view.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/directory)")
	root.PersistentFlags().StringArrayVarP(&a.flags.files, "file", "f", nil, "import file, repeatable (default: import_files from config.yaml)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newCountCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "directory:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps a command error to a process exit code. Import and I/O
// failures are system errors; everything else is a user error.
func exitCode(err error) int {
	if errors.Is(err, types.ErrImportFailure) {
		return exitSysError
	}
	return exitUserError
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	a.log = newLogger(cmd.ErrOrStderr(), a.flags.verbose)

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = configDir

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	a.v = v

	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("config %s=%q: %w", cfgKeySearchStrategy, a.cfg.SearchStrategy, err)
	}
	a.log.Debug("config loaded", "dir", configDir, "file", v.ConfigFileUsed())
	return nil
}

// out returns the writer commands print results to.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
