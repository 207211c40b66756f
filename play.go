package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/control"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/sound"
)

var (
	flagWatch bool
	flagScale int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open a window and play from the title menu.

Examples:
  platformer play
  platformer play --level 1-2 --scale 4
  platformer play --watch
  platformer play --macro demo`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the attempt when its level JSON under ./levels changes")
	playCmd.Flags().IntVar(&flagScale, "scale", 3, "Window scale of the 256x240 canvas")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	var sounds sound.Player = sound.Nop{}
	if s, err := sound.NewEbiten(logger); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		sounds = s
	}

	controls := control.New()
	session, err := newSession(sounds, controls, logger)
	if err != nil {
		return err
	}
	d, err := loadDemo(flagMacro)
	if err != nil {
		return err
	}

	var watcher *levels.Watcher
	if flagWatch {
		watcher, err = levels.NewWatcher("levels")
		if err != nil {
			return err
		}
		defer watcher.Close()
		logger.Info("watching levels", "dir", "levels")
	}

	if flagScale < 1 {
		flagScale = 1
	}
	ebiten.SetWindowSize(common.BaseWidth*flagScale, common.BaseHeight*flagScale)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Update runs once per display frame, like an animation-frame callback;
	// the loop then drops frames that arrive early.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	return ebiten.RunGame(NewGame(session, controls, sounds, d, watcher, logger))
}
