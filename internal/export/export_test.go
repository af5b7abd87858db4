package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"kat/internal/config"
)

func TestDropColumns(t *testing.T) {
	headers := []string{"uid", "name", "run_time", "rn"}
	records := [][]string{
		{"1", "alice", "42.1", "1"},
		{"2", "bob", "43.9", "1"},
	}

	gotHeaders, gotRecords := dropColumns(headers, records, "uid", "rn")

	if strings.Join(gotHeaders, ",") != "name,run_time" {
		t.Errorf("unexpected headers: %v", gotHeaders)
	}
	if strings.Join(gotRecords[0], ",") != "alice,42.1" || strings.Join(gotRecords[1], ",") != "bob,43.9" {
		t.Errorf("unexpected records: %v", gotRecords)
	}

	t.Run("absent column is a no-op", func(t *testing.T) {
		h, r := dropColumns(headers, records, "ip")
		if len(h) != 4 || len(r[0]) != 4 {
			t.Errorf("expected unchanged data, got %v %v", h, r)
		}
	})
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2007, 3, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"bytes", []byte("mmx"), "mmx"},
		{"int64", int64(99800), "99800"},
		{"float", 42.15, "42.15"},
		{"time", ts, "2007-03-15T12:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"ff7sb_runs", "playername", "_hidden", "T1"}
	for _, name := range valid {
		if !isValidIdentifier(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}

	invalid := []string{"", "1table", "runs; DROP TABLE x", `run"s`, "a b", strings.Repeat("x", 65)}
	for _, name := range invalid {
		if isValidIdentifier(name) {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	if got := placeholder("postgres", 1); got != "$1" {
		t.Errorf("expected $1, got %s", got)
	}
	if got := placeholder("mysql", 1); got != "?" {
		t.Errorf("expected ?, got %s", got)
	}
}

func TestWriteCSV(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "kat-export-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "out", "ff7sb.csv")
	headers := []string{"name", "run_time", "map_id"}
	records := [][]string{
		{"alice", "42.1", "1"},
		{"bob, jr", "43.9", "1"},
	}

	if err := writeCSV(path, headers, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("csv not written: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("csv not readable: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "name" || rows[2][0] != "bob, jr" {
		t.Errorf("unexpected csv contents: %v", rows)
	}
}

func leaderboardsFixture(driver string) *config.Leaderboards {
	lb := &config.Leaderboards{}
	lb.Database.Driver = driver
	lb.FF7SB.Database = "khak"
	lb.FF7SB.Table = "ff7sb_runs"
	lb.FF7SB.UsernameColumn = "name"
	lb.FF7SB.MapIDs = []int{1, 3, 5}
	lb.RockmanX.Database = "khak"
	lb.RockmanX.Table = "rockmanx_scores"
	lb.RockmanX.UsernameColumn = "playername"
	lb.RockmanX.ScoreColumn = "hiscore"
	return lb
}

func TestFF7SBExporter_Query(t *testing.T) {
	t.Run("postgres bind parameter", func(t *testing.T) {
		e := NewFF7SBExporter(leaderboardsFixture("postgres"))
		q := e.fastestRunsQuery()

		for _, want := range []string{
			"PARTITION BY name",
			"FROM ff7sb_runs",
			"WHERE map = $1",
			"ORDER BY run_time ASC",
			"LIMIT 10",
		} {
			if !strings.Contains(q, want) {
				t.Errorf("query missing %q:\n%s", want, q)
			}
		}
	})

	t.Run("mysql bind parameter", func(t *testing.T) {
		e := NewFF7SBExporter(leaderboardsFixture("mysql"))
		if !strings.Contains(e.fastestRunsQuery(), "WHERE map = ?") {
			t.Error("expected ? placeholder for mysql")
		}
	})
}

func TestRockmanXExporter_Query(t *testing.T) {
	e := NewRockmanXExporter(leaderboardsFixture("postgres"))
	q := e.topScoresQuery()

	for _, want := range []string{
		"PARTITION BY playername",
		"hiscore DESC, datetime ASC",
		"FROM rockmanx_scores",
		"ORDER BY hiscore DESC",
		"LIMIT 10",
	} {
		if !strings.Contains(q, want) {
			t.Errorf("query missing %q:\n%s", want, q)
		}
	}
}

func TestExporters_Enabled(t *testing.T) {
	lb := leaderboardsFixture("postgres")

	for _, e := range All(lb) {
		if !e.Enabled() {
			t.Errorf("expected %s to be enabled", e.Game())
		}
	}

	empty := &config.Leaderboards{}
	for _, e := range All(empty) {
		if e.Enabled() {
			t.Errorf("expected %s to be disabled without config", e.Game())
		}
	}
}
