package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarpov/termtris/internal/config"
	"github.com/akarpov/termtris/internal/core"
	"github.com/akarpov/termtris/internal/platform/tui"
	"github.com/akarpov/termtris/internal/storage"
	"github.com/akarpov/termtris/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Down/S     - Soft drop
  Space      - Hard drop
  Up/X       - Rotate clockwise
  Z          - Rotate counter-clockwise
  C          - Hold piece
  P/Esc      - Pause
  Enter      - Start / unpause / restart
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  termtris play
  termtris play --seed 42
  termtris play --config ./my-termtris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tetris.SetASCIIStyle(appCfg.UI.ASCII)

	// Explicit --fps wins over the config file
	tickRate := appCfg.Game.TickRate
	if cmd.Flags().Changed("fps") {
		tickRate = flagFPS
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	score, runErr := tui.Run(tetris.New(), store, cfg, appCfg.Input.DebounceFrames)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if score > 0 {
		fmt.Printf("Final score: %d\n", score)
	}
}
