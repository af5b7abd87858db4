package export

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"kat/internal/config"
)

// RockmanXExporter exports the overall top 10 highscores, one best score
// per player.
type RockmanXExporter struct {
	lb *config.Leaderboards
}

// NewRockmanXExporter creates a new RockmanXExporter
func NewRockmanXExporter(lb *config.Leaderboards) *RockmanXExporter {
	return &RockmanXExporter{lb: lb}
}

// Game returns the exporter's game key
func (e *RockmanXExporter) Game() string { return "rockmanx" }

// Enabled reports whether the game is configured for export
func (e *RockmanXExporter) Enabled() bool {
	c := e.lb.RockmanX
	return c.Database != "" && c.Table != ""
}

// Export writes the top scores to rockmanx.csv under outputDir. The ip
// column is stripped before writing.
func (e *RockmanXExporter) Export(ctx context.Context, outputDir string) error {
	c := e.lb.RockmanX
	if !isValidIdentifier(c.Table) || !isValidIdentifier(c.UsernameColumn) || !isValidIdentifier(c.ScoreColumn) {
		return fmt.Errorf("invalid table or column name in configuration")
	}

	color.Cyan("[RockmanX] Connecting to database %q...", c.Database)
	db, err := Connect(ctx, e.lb, c.Database)
	if err != nil {
		return err
	}
	defer func() {
		db.Close()
		color.Cyan("[RockmanX] Database connection closed")
	}()

	rows, err := db.QueryContext(ctx, e.topScoresQuery())
	if err != nil {
		return fmt.Errorf("fetch top scores: %w", err)
	}
	defer rows.Close()

	headers, records, err := scanRows(rows)
	if err != nil {
		return fmt.Errorf("fetch top scores: %w", err)
	}
	headers, records = dropColumns(headers, records, "ip", "rn")

	if len(records) == 0 {
		color.Yellow("[RockmanX] No data returned, CSV not written")
		return nil
	}

	path := filepath.Join(outputDir, "rockmanx.csv")
	if err := writeCSV(path, headers, records); err != nil {
		return err
	}
	color.Green("[RockmanX] Wrote %d row(s) to %s", len(records), path)
	return nil
}

// topScoresQuery keeps one best score per player (ties broken by earliest
// datetime), then ranks the overall top 10 by score.
func (e *RockmanXExporter) topScoresQuery() string {
	c := e.lb.RockmanX
	return fmt.Sprintf(`
		SELECT * FROM (
			SELECT t.*, ROW_NUMBER() OVER (PARTITION BY %[1]s ORDER BY %[2]s DESC, datetime ASC) AS rn
			FROM %[3]s t
		) sub
		WHERE rn = 1
		ORDER BY %[2]s DESC
		LIMIT 10`,
		c.UsernameColumn, c.ScoreColumn, c.Table)
}
