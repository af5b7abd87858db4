package domain

// Download describes a single file to fetch and where to place it
type Download struct {
	URL         string `json:"url"`
	Destination string `json:"destination"`
}
