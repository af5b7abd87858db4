package pull

import (
	"fmt"

	"github.com/fatih/color"
	"kat/internal/domain"
)

// Fetcher downloads a single resource to a local path
type Fetcher interface {
	Fetch(url, destination string) domain.DownloadResult
}

// Puller drives the download loop and tallies outcomes
type Puller struct {
	fetcher Fetcher
}

// NewPuller creates a new Puller
func NewPuller(fetcher Fetcher) *Puller {
	return &Puller{fetcher: fetcher}
}

// Run processes downloads in manifest order and returns the aggregate
// counts. Items missing a required field are skipped and counted as
// failures; per-item errors never abort the loop.
func (p *Puller) Run(downloads []domain.Download) domain.RunSummary {
	summary := domain.RunSummary{Total: len(downloads)}

	for i, d := range downloads {
		if d.URL == "" || d.Destination == "" {
			color.Yellow("Skipping item %d: missing 'url' or 'destination' field", i+1)
			summary.Failed++
			continue
		}

		fmt.Printf("[%d/%d] %s\n", i+1, len(downloads), d.URL)
		result := p.fetcher.Fetch(d.URL, d.Destination)
		if result.Success {
			color.Green("Saved to %s", d.Destination)
			summary.Succeeded++
		} else {
			color.Red("Failed: %v", result.Error)
			summary.Failed++
		}
	}

	return summary
}
