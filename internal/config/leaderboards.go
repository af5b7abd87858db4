package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Leaderboards is the exporter configuration loaded from YAML. Credentials
// never live in the file: the user may be overridden and the password is
// only ever read from the environment (a .env file is honored if present).
type Leaderboards struct {
	Database struct {
		Driver      string `yaml:"driver"`
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		User        string `yaml:"user"`
		SSLMode     string `yaml:"sslmode"`
		SSLRootCert string `yaml:"sslrootcert"`
	} `yaml:"database"`

	OutputDir string `yaml:"output_dir"`

	FF7SB struct {
		Database       string `yaml:"database"`
		Table          string `yaml:"table"`
		UsernameColumn string `yaml:"username_column"`
		MapIDs         []int  `yaml:"map_ids"`
	} `yaml:"ff7sb"`

	RockmanX struct {
		Database       string `yaml:"database"`
		Table          string `yaml:"table"`
		UsernameColumn string `yaml:"username_column"`
		ScoreColumn    string `yaml:"score_column"`
	} `yaml:"rockmanx"`

	password string
}

// LoadLeaderboards reads the exporter config file, applies defaults and
// pulls credentials from the environment.
func LoadLeaderboards(path string) (*Leaderboards, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read leaderboards config: %w", err)
	}
	var lb Leaderboards
	if err := yaml.Unmarshal(data, &lb); err != nil {
		return nil, fmt.Errorf("parse leaderboards config: %w", err)
	}
	lb.applyDefaults()
	if lb.Database.Driver != "postgres" && lb.Database.Driver != "mysql" {
		return nil, fmt.Errorf("unsupported database driver: %s", lb.Database.Driver)
	}
	lb.applyEnv()
	return &lb, nil
}

func (l *Leaderboards) applyDefaults() {
	if l.Database.Driver == "" {
		l.Database.Driver = "postgres"
	}
	if l.Database.Host == "" {
		l.Database.Host = "127.0.0.1"
	}
	if l.Database.Port == 0 {
		if l.Database.Driver == "mysql" {
			l.Database.Port = 3306
		} else {
			l.Database.Port = 5432
		}
	}
	if l.Database.SSLMode == "" {
		l.Database.SSLMode = "require"
	}
	if l.OutputDir == "" {
		l.OutputDir = DefaultOutputDir
	}
	if l.FF7SB.UsernameColumn == "" {
		l.FF7SB.UsernameColumn = "name"
	}
	if l.RockmanX.UsernameColumn == "" {
		l.RockmanX.UsernameColumn = "playername"
	}
	if l.RockmanX.ScoreColumn == "" {
		l.RockmanX.ScoreColumn = "hiscore"
	}
}

func (l *Leaderboards) applyEnv() {
	// .env might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	if user := os.Getenv("DB_USERNAME"); user != "" {
		l.Database.User = user
	}
	l.password = os.Getenv("DB_PASSWORD")
}

// DSN returns the driver-specific connection string for the given game database.
func (l *Leaderboards) DSN(dbname string) string {
	d := l.Database
	if d.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", d.User, l.password, d.Host, d.Port, dbname)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, dbname, d.SSLMode)
	if l.password != "" {
		dsn += " password=" + l.password
	}
	if d.SSLRootCert != "" {
		dsn += " sslrootcert=" + d.SSLRootCert
	}
	return dsn
}
