package domain

import "time"

// DownloadResult represents the outcome of fetching a single download
type DownloadResult struct {
	URL         string        // Source URL
	Destination string        // Local path the file was written to
	Success     bool          // Whether the transfer completed
	Error       error         // Error if the transfer or write failed
	Duration    time.Duration // Time taken for the attempt
}

// RunSummary aggregates outcomes across all downloads in one invocation
type RunSummary struct {
	Succeeded int
	Failed    int
	Total     int
}
