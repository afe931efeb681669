package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilemine/tilemine/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in color themes",
	Long:  `Shows the color themes available for play, in cycle order.`,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	catalog := theme.Catalog()

	fmt.Println("Available themes:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, t := range catalog {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Base hue")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "--------")

	for _, t := range catalog {
		fmt.Printf("  %-*s  %.2f\n", maxNameLen, t.Name, t.BaseHue)
	}

	fmt.Println()
	fmt.Println("Run 'tilemine play --theme <name>' to start with a theme,")
	fmt.Println("or press T in game to cycle through them.")
}
