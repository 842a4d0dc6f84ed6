// chaosflap is a terminal flappy game with a chaos hazard mode.
//
// Usage:
//
//	chaosflap play            - Play in the current terminal
//	chaosflap serve           - Start SSH server for remote play
//	chaosflap scores          - Show run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chaosflap/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaosflap",
	Short: "Chaosflap - flappy with hazards, in your terminal",
	Long: `Chaosflap is a terminal flappy game. Steer a bird through pipe gaps,
optionally under a chaos mode that adds lasers, gravity zones, vortexes,
projectiles, electrified gaps and quantum pipes. Breaking your own record
triggers a black hole.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View run history

Examples:
  chaosflap play
  chaosflap play --chaos --difficulty hard
  chaosflap serve --ssh :2222
  chaosflap scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chaosflap/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
