package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-plinko/internal/audio"
	"github.com/vovakirdan/tui-plinko/internal/games/plinko"
	"github.com/vovakirdan/tui-plinko/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the board in a desktop window at its native size.

Controls:
  Mouse, ←/→, A/D  - Aim
  Click/Space      - Drop the coin
  T                - Switch board style
  R                - Restart
  P                - Pause
  Q/Esc            - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects (overrides config)")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("plinko", os.Stderr)
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

	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Start(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	defer player.Close()

	session := plinko.NewSession(cfg,
		plinko.WithLogger(logger),
		plinko.WithSeed(flagSeed),
		plinko.WithTickRate(flagFPS),
	)
	return window.Run(window.New(session, cfg.Session.AimStep, player, logger), flagFPS)
}
