package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLeaderboardsFile(t *testing.T, content string) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "kat-config-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "leaderboards.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadLeaderboards(t *testing.T) {
	t.Setenv("DB_USERNAME", "")
	t.Setenv("DB_PASSWORD", "")

	t.Run("applies defaults", func(t *testing.T) {
		path := writeLeaderboardsFile(t, `
database:
  user: archive
ff7sb:
  database: khak
  table: ff7sb_runs
  map_ids: [1, 3, 5]
`)

		lb, err := LoadLeaderboards(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lb.Database.Driver != "postgres" {
			t.Errorf("expected postgres default, got %s", lb.Database.Driver)
		}
		if lb.Database.Port != 5432 {
			t.Errorf("expected port 5432, got %d", lb.Database.Port)
		}
		if lb.Database.SSLMode != "require" {
			t.Errorf("expected sslmode require, got %s", lb.Database.SSLMode)
		}
		if lb.OutputDir != DefaultOutputDir {
			t.Errorf("expected default output dir, got %s", lb.OutputDir)
		}
		if lb.FF7SB.UsernameColumn != "name" || lb.RockmanX.UsernameColumn != "playername" || lb.RockmanX.ScoreColumn != "hiscore" {
			t.Errorf("column defaults not applied: %+v", lb)
		}
	})

	t.Run("mysql driver defaults to port 3306", func(t *testing.T) {
		path := writeLeaderboardsFile(t, `
database:
  driver: mysql
  user: archive
`)
		lb, err := LoadLeaderboards(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lb.Database.Port != 3306 {
			t.Errorf("expected port 3306, got %d", lb.Database.Port)
		}
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		path := writeLeaderboardsFile(t, `
database:
  driver: sqlite
`)
		if _, err := LoadLeaderboards(path); err == nil {
			t.Error("expected error for unsupported driver")
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		if _, err := LoadLeaderboards("/non/existent/leaderboards.yaml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("returns error for malformed YAML", func(t *testing.T) {
		path := writeLeaderboardsFile(t, "database: [broken")
		if _, err := LoadLeaderboards(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})

	t.Run("credentials come from the environment", func(t *testing.T) {
		t.Setenv("DB_USERNAME", "envuser")
		t.Setenv("DB_PASSWORD", "hunter2")

		path := writeLeaderboardsFile(t, `
database:
  user: fileuser
  host: db.example.com
`)
		lb, err := LoadLeaderboards(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lb.Database.User != "envuser" {
			t.Errorf("expected env user override, got %s", lb.Database.User)
		}

		dsn := lb.DSN("khak")
		if dsn != "host=db.example.com port=5432 user=envuser dbname=khak sslmode=require password=hunter2" {
			t.Errorf("unexpected postgres DSN: %s", dsn)
		}
	})
}

func TestLeaderboards_DSN(t *testing.T) {
	t.Setenv("DB_USERNAME", "")
	t.Setenv("DB_PASSWORD", "s3cret")

	t.Run("mysql", func(t *testing.T) {
		path := writeLeaderboardsFile(t, `
database:
  driver: mysql
  user: archive
  host: db.example.com
`)
		lb, err := LoadLeaderboards(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := lb.DSN("khak"); got != "archive:s3cret@tcp(db.example.com:3306)/khak?parseTime=true" {
			t.Errorf("unexpected mysql DSN: %s", got)
		}
	})

	t.Run("postgres with root cert", func(t *testing.T) {
		path := writeLeaderboardsFile(t, `
database:
  user: archive
  host: db.example.com
  sslmode: verify-full
  sslrootcert: /etc/ssl/root.crt
`)
		lb, err := LoadLeaderboards(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "host=db.example.com port=5432 user=archive dbname=khak sslmode=verify-full password=s3cret sslrootcert=/etc/ssl/root.crt"
		if got := lb.DSN("khak"); got != want {
			t.Errorf("unexpected postgres DSN:\n got %s\nwant %s", got, want)
		}
	})
}
