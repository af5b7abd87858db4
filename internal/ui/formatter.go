package ui

import (
	"fmt"

	"github.com/fatih/color"
	"kat/internal/domain"
)

// Formatter formats and displays output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintRunSummary displays the download run totals.
func (f *Formatter) PrintRunSummary(summary domain.RunSummary) {
	fmt.Println()
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                       Download Summary                        ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Successful")
	color.Green("%-27d │\n", summary.Succeeded)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", summary.Failed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total")
	color.White("%-27d │\n", summary.Total)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if summary.Failed == 0 {
		color.Green("✓ All downloads completed!")
	} else {
		color.Red("✗ %d of %d download(s) failed", summary.Failed, summary.Total)
	}
}
