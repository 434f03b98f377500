// Root command for the queryboard CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/queryboard/internal/paths"
	"github.com/mesh-intelligence/queryboard/pkg/queryboard"
)

// Global flag values.
var (
	flagConfigDir string
	flagDB        string
	flagJSON      bool
	flagVerbose   bool
)

// Loaded by PersistentPreRunE so all subcommands can use them.
var (
	configDatabaseFile string
	configDefaultLimit int
	configMaxLimit     int
	logger             *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "queryboard",
	Short:   "Queryboard serves paged table listings and SELECT results over a SQLite database",
	Version: queryboard.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDatabaseFile = cfg.GetString(cfgKeyDatabaseFile)
		configDefaultLimit = cfg.GetInt(cfgKeyDefaultLimit)
		configMaxLimit = cfg.GetInt(cfgKeyMaxLimit)

		logger, err = newLogger(flagVerbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database file to serve queries from")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(databasesCmd)
}

// newLogger builds the CLI logger: errors only by default so command output
// stays clean, debug level with --verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return cfg.Build()
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > QUERYBOARD_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDatabaseFile returns the database file following the precedence:
// --db flag > config.yaml database_file > QUERYBOARD_DB env.
func resolveDatabaseFile() (string, error) {
	return paths.ResolveDatabaseFile(flagDB, configDatabaseFile)
}
