package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/neocapy/friend-reader/internal/domain"
)

// LoadJSON читает документ в собственном wire-формате (тот же JSON,
// что отдаёт GET /document) — удобно для отладки и раздачи без EPUB.
func LoadJSON(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", path, err)
	}
	return &doc, nil
}
