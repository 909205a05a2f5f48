package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets from the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig("", 0)
	if err != nil {
		return err
	}

	fmt.Println("Difficulties:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range cfg.Difficulties {
		maxNameLen = max(maxNameLen, len(d.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Tick")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----")

	for _, d := range cfg.Difficulties {
		marker := ""
		if d.Name == cfg.DefaultDifficulty {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxNameLen, d.Name, d.Interval(), marker)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --difficulty <name>' to pick one.")
	return nil
}
