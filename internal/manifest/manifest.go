package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"kat/internal/domain"
)

// fileSchema mirrors the manifest's top-level structure
type fileSchema struct {
	Downloads []domain.Download `json:"downloads"`
}

// Load reads the manifest at path and returns the ordered download list.
// A missing file or malformed JSON is fatal for the caller; an absent
// "downloads" key just yields an empty list.
func Load(path string) ([]domain.Download, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m fileSchema
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m.Downloads, nil
}
