// platformer runs the side-scrolling platformer in a window or headless.
//
// Usage:
//
//	platformer play             - Open the game window
//	platformer run --ticks 600  - Simulate without a window and print a summary
//	platformer levels           - List the bundled levels
//
// Global flags:
//
//	--debug           - Debug logging and the debug overlay
//	--config <path>   - Physics tuning YAML overriding the bundled defaults
//	--level <w-l>     - Start at this world and level
//	--macro <script>  - Tengo script that drives the keys at the start of each attempt
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sound"
)

var (
	flagDebug  bool
	flagConfig string
	flagLevel  string
	flagMacro  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tile-based side-scrolling platformer",
	Long: `platformer streams tile maps past a fixed-step simulation of a running,
jumping player, patrolling enemies and power-ups.

Controls:
  Arrows/WASD/Space  - Move and jump
  X/F/Ctrl           - Throw a fireball
  Enter              - Start
  P/Esc              - Pause
  F3                 - Toggle the debug overlay`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and overlay")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a physics tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Starting level as world-level, e.g. 1-2")
	rootCmd.PersistentFlags().StringVar(&flagMacro, "macro", "", "Tengo macro script (path or bundled name)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadPhysics() (*prefabs.PhysicsSpec, error) {
	if flagConfig == "" {
		return prefabs.LoadPhysicsSpec()
	}
	return prefabs.LoadPhysicsFile(flagConfig)
}

// newSession wires the shared collaborators from the global flags.
func newSession(sounds sound.Player, controls *control.Controls, logger *log.Logger) (*game.Session, error) {
	physics, err := loadPhysics()
	if err != nil {
		return nil, err
	}
	atlas, err := prefabs.LoadAtlas()
	if err != nil {
		return nil, err
	}
	s, err := game.NewSession(game.Options{
		Physics:  physics,
		Lookup:   atlas,
		Sounds:   sounds,
		Controls: controls,
		Logger:   logger,
	}, nil)
	if err != nil {
		return nil, err
	}
	if flagLevel != "" {
		if err := s.State().SetLevel(flagLevel); err != nil {
			return nil, err
		}
	}
	return s, nil
}
