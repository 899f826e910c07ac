package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-plinko/internal/audio"
	"github.com/vovakirdan/tui-plinko/internal/core"
	"github.com/vovakirdan/tui-plinko/internal/games/plinko"
	"github.com/vovakirdan/tui-plinko/internal/platform/tui"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  ←/→, A/D, mouse  - Aim
  Space/Enter/click - Drop the coin
  T                - Switch board style (restarts the run)
  R                - Restart
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot to ~/.plinko/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 15 coins, gentle drop kick
  normal - 10 coins
  hard   - 5 coins, wild drop kick

Examples:
  plinko play
  plinko play --style classic
  plinko play --difficulty hard --sound
  plinko play --config ./my-plinko.yaml --log-file plinko.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects (overrides config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alt screen owns stdout; only log to a file.
	logger, closeLog, err := newLogger("plinko", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Start(); err != nil {
		// Play on without sound.
		logger.Warn("audio unavailable", "err", err)
	}
	defer player.Close()

	game := plinko.New(cfg, plinko.WithLogger(logger))
	if err := tui.Run(game, rt, tui.WithEventSink(player), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
