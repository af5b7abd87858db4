package export

import (
	"context"

	"kat/internal/config"
)

// Exporter writes one game's leaderboard to a CSV file under outputDir.
type Exporter interface {
	Game() string
	// Enabled reports whether the game is configured for export.
	Enabled() bool
	Export(ctx context.Context, outputDir string) error
}

// All returns the exporters in a fixed order.
func All(lb *config.Leaderboards) []Exporter {
	return []Exporter{
		NewFF7SBExporter(lb),
		NewRockmanXExporter(lb),
	}
}
