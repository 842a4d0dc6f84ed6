package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chaosflap/internal/config"
	"github.com/vovakirdan/chaosflap/internal/core"
	"github.com/vovakirdan/chaosflap/internal/game"
	"github.com/vovakirdan/chaosflap/internal/platform/tui"
	"github.com/vovakirdan/chaosflap/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagChaos      bool
	flagCurve      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start playing in the current terminal.

Controls:
  Space/Up   - Flap (also starts, resumes and restarts)
  C          - Toggle chaos mode
  M          - Cycle the motion curve
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  chaosflap play
  chaosflap play --chaos
  chaosflap play --curve sine --difficulty hard
  chaosflap play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagChaos, "chaos", false, "Start with chaos mode on")
	playCmd.Flags().StringVar(&flagCurve, "curve", "", "Motion curve: parabolic, linear, exponential, sine")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}
	if flagChaos {
		gameCfg.Chaos.Enabled = true
	}
	if flagCurve != "" {
		gameCfg.Physics.MotionCurve = string(game.ParseCurve(flagCurve))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game.New(gameCfg), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
