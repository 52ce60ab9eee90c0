// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/twistylab/cubesim/internal/storage"
)

const version = "0.1.0"

const defaultSolverURL = "http://localhost:8080"

var (
	// Global flags
	dbPath    string
	solverURL string
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "3x3 cube simulator",
	Long: `cubesim - a 3x3 twisty-puzzle simulator.

Apply move sequences, generate scrambles, serialize cube states into the
canonical facelet string, and hand them to an external two-phase solver.
Sessions are stored in a local SQLite database.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
	rootCmd.PersistentFlags().StringVar(&solverURL, "solver-url", "", "Base URL of the external solver service")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// initConfig loads ~/.cubesim/config.yaml and sets up logging.
// Flags take precedence over config values.
func initConfig() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	viper.SetDefault("solver_url", defaultSolverURL)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".cubesim"))
	}
	viper.SetEnvPrefix("CUBESIM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Msg("could not read config file")
		}
	} else {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config")
	}
}

// getSolverURL returns the solver URL from flag or config.
func getSolverURL() string {
	if solverURL != "" {
		return solverURL
	}
	return viper.GetString("solver_url")
}

// openDB opens the session database from flag, config, or default path.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		path = viper.GetString("db_path")
	}

	var (
		db  *storage.DB
		err error
	)
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", db.Path()).Msg("opened session database")
	return db, nil
}
