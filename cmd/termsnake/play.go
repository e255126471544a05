package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termsnake/termsnake/internal/config"
	"github.com/termsnake/termsnake/internal/core"
	"github.com/termsnake/termsnake/internal/platform/tui"
	"github.com/termsnake/termsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in the local terminal",
	Long: `Start the game.

Controls:
  Arrows/WASD - Steer
  Space       - Pause/Resume (also starts from the menu)
  Enter       - Start
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  termsnake play
  termsnake play --seed 42
  termsnake play --config ./my-theme.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open score storage; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(store, cfg, tui.NewTheme(appCfg.Theme))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
