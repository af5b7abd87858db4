package export

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"kat/internal/config"
)

// FF7SBExporter exports each map's fastest runs for FF7 Snowboarding.
type FF7SBExporter struct {
	lb *config.Leaderboards
}

// NewFF7SBExporter creates a new FF7SBExporter
func NewFF7SBExporter(lb *config.Leaderboards) *FF7SBExporter {
	return &FF7SBExporter{lb: lb}
}

// Game returns the exporter's game key
func (e *FF7SBExporter) Game() string { return "ff7sb" }

// Enabled reports whether the game is configured for export
func (e *FF7SBExporter) Enabled() bool {
	c := e.lb.FF7SB
	return c.Database != "" && c.Table != "" && len(c.MapIDs) > 0
}

// Export writes all configured maps into a single ff7sb.csv under outputDir.
func (e *FF7SBExporter) Export(ctx context.Context, outputDir string) error {
	c := e.lb.FF7SB
	if !isValidIdentifier(c.Table) || !isValidIdentifier(c.UsernameColumn) {
		return fmt.Errorf("invalid table or column name in configuration")
	}

	color.Cyan("[FF7SB] Connecting to database %q...", c.Database)
	db, err := Connect(ctx, e.lb, c.Database)
	if err != nil {
		return err
	}
	defer func() {
		db.Close()
		color.Cyan("[FF7SB] Database connection closed")
	}()

	var headers []string
	var allRecords [][]string
	for _, mapID := range c.MapIDs {
		color.Cyan("[FF7SB] Fetching map %d...", mapID)
		hdrs, records, err := e.fetchMap(ctx, db, mapID)
		if err != nil {
			return fmt.Errorf("fetch map %d: %w", mapID, err)
		}
		if headers == nil {
			headers = hdrs
		}
		allRecords = append(allRecords, records...)
	}

	if len(allRecords) == 0 {
		color.Yellow("[FF7SB] No data returned, CSV not written")
		return nil
	}

	path := filepath.Join(outputDir, "ff7sb.csv")
	if err := writeCSV(path, headers, allRecords); err != nil {
		return err
	}
	color.Green("[FF7SB] Wrote %d row(s) to %s", len(allRecords), path)
	return nil
}

// fetchMap returns each player's fastest run for one map, overall top 10
// by run time, with the uid column stripped and a map_id column appended.
func (e *FF7SBExporter) fetchMap(ctx context.Context, db *sql.DB, mapID int) ([]string, [][]string, error) {
	rows, err := db.QueryContext(ctx, e.fastestRunsQuery(), mapID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	headers, records, err := scanRows(rows)
	if err != nil {
		return nil, nil, err
	}

	headers, records = dropColumns(headers, records, "uid", "rn")
	headers = append(headers, "map_id")
	for i := range records {
		records[i] = append(records[i], strconv.Itoa(mapID))
	}
	return headers, records, nil
}

// fastestRunsQuery deduplicates to one row per player before ranking.
// ROW_NUMBER works on both Postgres and MySQL 8, unlike DISTINCT ON.
func (e *FF7SBExporter) fastestRunsQuery() string {
	c := e.lb.FF7SB
	return fmt.Sprintf(`
		SELECT * FROM (
			SELECT t.*, ROW_NUMBER() OVER (PARTITION BY %[1]s ORDER BY run_time ASC) AS rn
			FROM %[2]s t
			WHERE map = %[3]s
		) sub
		WHERE rn = 1
		ORDER BY run_time ASC
		LIMIT 10`,
		c.UsernameColumn, c.Table, placeholder(e.lb.Database.Driver, 1))
}
