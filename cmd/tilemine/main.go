// tilemine is a terminal tile sandbox: an endless, procedurally generated
// world you can walk, fly, and reshape block by block.
//
// Usage:
//
//	tilemine play             - Start a sandbox session
//	tilemine serve            - Start SSH server for remote play
//	tilemine themes           - List the built-in color themes
//	tilemine stats            - Browse past session stats
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set world seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.tilemine/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilemine/tilemine/internal/config"
	"github.com/tilemine/tilemine/internal/sim"
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
	Use:   "tilemine",
	Short: "Tilemine - an endless tile sandbox in your terminal",
	Long: `Tilemine drops you into an infinite, deterministic tile world.
Walk, jump, crouch, and fly; place and mine blocks within reach; cycle
color themes without losing your edits.

Available commands:
  play     - Start a sandbox session
  serve    - Start SSH server for remote play
  themes   - List the built-in color themes
  stats    - Browse past session stats

Examples:
  tilemine play
  tilemine play --seed 42 --theme "Rose Dawn"
  tilemine serve --ssh :2222
  tilemine stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilemine/sessions.db", "Path to session stats database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(statsCmd)
}

// simParams converts the loaded YAML config into simulation parameters.
// The world seed is filled in later from the --seed flag or the clock.
func simParams(cfg config.Config) sim.Params {
	params := sim.DefaultParams(0)

	if cfg.World.Height > 0 {
		params.World.Height = cfg.World.Height
	}
	if cfg.World.SubsurfaceDepth > 0 {
		params.World.SubsurfaceDepth = cfg.World.SubsurfaceDepth
	}
	if cfg.World.PlatformPeriod > 0 {
		params.World.PlatformPeriod = cfg.World.PlatformPeriod
	}
	if cfg.World.CrystalChance > 0 {
		params.World.CrystalChance = cfg.World.CrystalChance
	}
	if cfg.World.StackChance > 0 {
		params.World.StackChance = cfg.World.StackChance
	}

	if cfg.Physics.Gravity > 0 {
		params.Physics.Gravity = cfg.Physics.Gravity
	}
	if cfg.Physics.MoveSpeed > 0 {
		params.Physics.MoveSpeed = cfg.Physics.MoveSpeed
	}
	if cfg.Physics.FlightSpeed > 0 {
		params.Physics.FlightSpeed = cfg.Physics.FlightSpeed
	}
	if cfg.Physics.JumpSpeed > 0 {
		params.Physics.JumpSpeed = cfg.Physics.JumpSpeed
	}
	if cfg.Physics.MaxFallSpeed > 0 {
		params.Physics.MaxFallSpeed = cfg.Physics.MaxFallSpeed
	}
	if cfg.Physics.CrouchSpeedFactor > 0 {
		params.Physics.CrouchSpeedFactor = cfg.Physics.CrouchSpeedFactor
	}

	if cfg.Player.Width > 0 {
		params.PlayerWidth = sim.BlockSize * cfg.Player.Width
	}
	if cfg.Player.Height > 0 {
		params.PlayerHeight = sim.BlockSize * cfg.Player.Height
	}
	params.SpawnColumn = cfg.Player.SpawnColumn

	if cfg.Build.Radius > 0 {
		params.BuildRadius = cfg.Build.Radius
	}

	return params
}
