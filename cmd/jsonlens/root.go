package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "jsonlens",
	Short: "jsonlens - inspect JSON documents as a searchable, sortable table",
	Long: `jsonlens loads a JSON document (an object or an array of objects),
discovers its flat column space, and lets you search, filter, and sort it
like a table.

Examples:
  # Show the discovered columns of a file
  jsonlens schema data.json

  # Search and filter, rendered as an aligned table
  jsonlens view data.json --query alice --filter 'age:>:30' --sort age

  # Page a large file the way a virtualized UI would
  jsonlens view big.json --height 720 --scroll 3600 --overscan 5

  # Export the filtered view as pretty-printed JSON
  jsonlens export data.json --filter 'status:equals:active' -o active.json`,
}

var (
	// Global flags.
	logLevel string
	cfgFile  string

	logger *slog.Logger
	config *viper.Viper
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./jsonlens.yaml, ~/.jsonlens/jsonlens.yaml)")
}

// initConfig sets up Viper. Precedence: flags, then JSONLENS_*
// environment variables, then config file, then defaults.
func initConfig() {
	config = viper.New()

	if cfgFile == "" {
		cfgFile = os.Getenv("JSONLENS_CONFIG")
	}
	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
	} else {
		config.SetConfigName("jsonlens")
		config.SetConfigType("yaml")
		config.AddConfigPath(".")
		config.AddConfigPath("$HOME/.jsonlens")
	}

	config.AutomaticEnv()
	config.SetEnvPrefix("JSONLENS")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	config.SetDefault("format", "table")
	config.SetDefault("row-height", 36)
	config.SetDefault("overscan", 5)
	config.SetDefault("columns-file", "$HOME/.jsonlens/columns.yaml")

	// Missing config file is fine; defaults and env still apply.
	_ = config.ReadInConfig()

	if env := config.GetString("log-level"); env != "" && !rootCmd.PersistentFlags().Changed("log-level") {
		logLevel = env
	}
	logger = initLogging(logLevel)
}

// columnsFilePath resolves the column visibility store location,
// expanding a leading $HOME.
func columnsFilePath() string {
	path := config.GetString("columns-file")
	if strings.HasPrefix(path, "$HOME") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + strings.TrimPrefix(path, "$HOME")
		}
	}
	return path
}
