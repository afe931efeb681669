package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tilemine/tilemine/internal/config"
	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/platform/tui"
	"github.com/tilemine/tilemine/internal/storage"
	"github.com/tilemine/tilemine/internal/theme"
)

var (
	flagConfig string
	flagTheme  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a sandbox session",
	Long: `Start a sandbox session in the current terminal.

Controls:
  A/D, Left/Right   - Walk
  Space             - Jump (double-tap toggles flight)
  W/S, Up/Down      - Ascend/descend in flight
  C                 - Crouch
  Mouse left/right  - Place / mine block under the crosshair
  1-5, [, ], wheel  - Select inventory slot
  T                 - Cycle color theme
  Q/Ctrl+C          - Quit

Examples:
  tilemine play
  tilemine play --seed 42
  tilemine play --theme "Verdant Mist"
  tilemine play --config ./my-world.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Starting theme name (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	themeName := cfg.Theme
	if flagTheme != "" {
		themeName = flagTheme
	}

	// Get terminal size for the initial frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open stats storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats database: %v\n", err)
		// Continue without storage - the sandbox still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Runtime: runtime,
		Sim:     simParams(cfg),
		Theme:   theme.ByName(themeName),
		Store:   store,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
