package export

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"kat/internal/config"
)

// Connect opens a connection to the given game database and verifies it
// with a bounded ping.
func Connect(ctx context.Context, lb *config.Leaderboards, dbname string) (*sql.DB, error) {
	db, err := sql.Open(lb.Database.Driver, lb.DSN(dbname))
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbname, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", dbname, err)
	}
	return db, nil
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// isValidIdentifier guards table and column names that are interpolated
// into queries (they come from the config file, not bind parameters).
func isValidIdentifier(name string) bool {
	return len(name) <= 64 && identifierPattern.MatchString(name)
}

// placeholder returns the driver's bind parameter for position n.
func placeholder(driver string, n int) string {
	if driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// scanRows reads all remaining rows as strings, preserving column order.
func scanRows(rows *sql.Rows) ([]string, [][]string, error) {
	headers, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("read columns: %w", err)
	}

	var records [][]string
	for rows.Next() {
		values := make([]any, len(headers))
		ptrs := make([]any, len(headers))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan row: %w", err)
		}

		record := make([]string, len(headers))
		for i, v := range values {
			record[i] = formatValue(v)
		}
		records = append(records, record)
	}
	return headers, records, rows.Err()
}

// formatValue renders a driver value as CSV cell text.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

// dropColumns removes the named columns from headers and every record.
func dropColumns(headers []string, records [][]string, names ...string) ([]string, [][]string) {
	drop := make(map[int]bool)
	for _, name := range names {
		for i, h := range headers {
			if h == name {
				drop[i] = true
			}
		}
	}
	if len(drop) == 0 {
		return headers, records
	}

	var outHeaders []string
	for i, h := range headers {
		if !drop[i] {
			outHeaders = append(outHeaders, h)
		}
	}
	outRecords := make([][]string, len(records))
	for r, record := range records {
		var kept []string
		for i, v := range record {
			if !drop[i] {
				kept = append(kept, v)
			}
		}
		outRecords[r] = kept
	}
	return outHeaders, outRecords
}
