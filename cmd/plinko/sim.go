package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-plinko/internal/games/plinko"
)

var (
	flagRuns     int
	flagAim      string
	flagMaxTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play runs headlessly and print the scores",
	Long: `Plays whole runs without a screen and prints each run's score.

Aim options:
  center  - Drop every coin from the middle
  random  - Drop every coin from a random position
  <x>     - Drop every coin from board position x

Examples:
  plinko sim
  plinko sim --runs 100 --aim random --seed 7
  plinko sim --style classic --aim 120`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simCmd.Flags().StringVar(&flagAim, "aim", "center", "Aim: center, random or a board x position")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 1_000_000, "Give up on a run after this many ticks")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("plinko-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	aim, err := parseAim(flagAim, flagSeed)
	if err != nil {
		return err
	}

	total := 0
	for run := 1; run <= flagRuns; run++ {
		seed := flagSeed
		if seed != 0 {
			seed += int64(run - 1)
		}
		s := plinko.NewSession(cfg, plinko.WithLogger(logger), plinko.WithSeed(seed), plinko.WithTickRate(flagFPS))

		tally, err := plinko.PlayRun(s, aim, flagMaxTicks)
		if err != nil {
			return fmt.Errorf("run %d: %w", run, err)
		}
		total += tally.Score
		fmt.Printf("  run %-4d  %-8s  score %d\n", run, s.Style(), tally.Score)
	}

	if flagRuns > 0 {
		fmt.Println()
		fmt.Printf("  %d runs, total %d, average %.1f\n", flagRuns, total, float64(total)/float64(flagRuns))
	}
	return nil
}

func parseAim(s string, seed int64) (plinko.AimFunc, error) {
	switch s {
	case "center":
		return func(w float64) float64 { return w / 2 }, nil
	case "random":
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		return func(w float64) float64 { return rng.Float64() * w }, nil
	}

	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --aim %q: want center, random or a number", s)
	}
	return func(float64) float64 { return x }, nil
}
