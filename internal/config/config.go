package config

import "time"

// Config holds all configuration for the application
type Config struct {
	// Pull settings
	ManifestPath    string
	DownloadTimeout time.Duration

	// Export settings
	LeaderboardsPath string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Quiet        bool
	Leaderboards string
	Game         string

	CardName        string
	CardCategory    string
	CardTags        string
	CardSearch      string
	CardTitle       string
	CardDescription string
	CardHref        string
	CardOut         string
	NoPills         bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ManifestPath:     DefaultManifestFile,
		DownloadTimeout:  DefaultDownloadTimeout,
		LeaderboardsPath: DefaultLeaderboardsFile,
	}
}

// GetManifestPath returns the manifest path, preferring the positional argument
func (c *Config) GetManifestPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.ManifestPath
}

// GetLeaderboardsPath returns the exporter config path, using the flag if provided
func (c *Config) GetLeaderboardsPath() string {
	if c.Flags.Leaderboards != "" {
		return c.Flags.Leaderboards
	}
	return c.LeaderboardsPath
}
