package config

import "time"

const (
	// DefaultManifestFile is the manifest read when no argument is given
	DefaultManifestFile = "download_config.json"
	// DefaultLeaderboardsFile is the default leaderboard exporter config path
	DefaultLeaderboardsFile = "leaderboards.yaml"
	// DefaultOutputDir is where exported CSVs are written
	DefaultOutputDir = "exports"
	// DefaultDownloadTimeout bounds a single transfer attempt
	DefaultDownloadTimeout = 30 * time.Second
)
