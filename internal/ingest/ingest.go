// Package ingest готовит книгу к раздаче: разбирает EPUB в плоский
// документ из текстов и заголовков либо читает уже готовый JSON-документ.
// Результат неизменяем на всё время жизни сервера.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/neocapy/friend-reader/internal/domain"
)

// Load распознаёт формат по расширению. JSON-документы картинок
// не несут — для них возвращается пустая карта.
func Load(path string) (*domain.Document, map[string][]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".epub":
		return LoadEPUB(path)
	case ".json":
		doc, err := LoadJSON(path)
		if err != nil {
			return nil, nil, err
		}
		return doc, map[string][]byte{}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported book format %q (want .epub or .json)", filepath.Ext(path))
	}
}
