// plinko is a coin-drop arcade game for the terminal and the desktop.
//
// Usage:
//
//	plinko play              - Play in the terminal
//	plinko window            - Play in a desktop window
//	plinko styles            - List board styles
//	plinko sim               - Play runs headlessly and print the scores
//	plinko config            - Print the default config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible drops
//	--config <path>       - Use a custom config file
//	--difficulty <preset> - easy, normal or hard
//	--style <name>        - modern or classic
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
//
// A .env file in the working directory may set PLINKO_CONFIG, used when
// --config is not given.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-plinko/internal/config"
	"github.com/vovakirdan/tui-plinko/internal/games/plinko"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagStyle      string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "plinko",
	Short: "Plinko - drop coins through pegs into scoring gates",
	Long: `Plinko drops a coin through a field of pegs into scoring gates at the
bottom of the board. Each run has a fixed number of coins; the run ends when
the last one lands.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  styles   - List board styles
  sim      - Play runs headlessly and print the scores
  config   - Print the default config file

Examples:
  plinko play
  plinko play --style classic --difficulty easy
  plinko window --sound
  plinko sim --runs 20 --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := checkFPS(flagFPS); err != nil {
			return err
		}
		return loadEnv(".env")
	},
}

// checkFPS rejects tick rates the game loops cannot run at.
func checkFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("--fps must be > 0, got %d", fps)
	}
	return nil
}

// configEnv names the config file when --config is not set.
const configEnv = "PLINKO_CONFIG"

// loadEnv reads variables from an optional dotenv file. Variables already
// set in the environment win.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagStyle, "style", "", "Board style: modern, classic (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when given,
// otherwise to fallback.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig resolves the config file, applies the difficulty preset
// and the style override.
func loadGameConfig(logger *log.Logger) (config.PlinkoConfig, error) {
	path := flagConfig
	if path == "" {
		path = os.Getenv(configEnv)
	}
	cfg, err := config.LoadPlinko(path)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPlinkoPreset(&cfg, preset)

	if flagStyle != "" {
		if _, err := plinko.ParseStyle(flagStyle); err != nil {
			return cfg, err
		}
		cfg.Session.Style = flagStyle
	}

	logger.Debug("config loaded", "path", path, "difficulty", preset, "style", cfg.Session.Style, "coins", cfg.Session.Coins)
	return cfg, nil
}
