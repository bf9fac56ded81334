// Package typeface измеряет текст поверх SFNT-шрифтов (TTF/OTF).
// Он реализует layout.Measurer: вёрстке нужна только высота текста,
// свернутого в колонку заданной ширины, растеризацией занимается UI.
package typeface

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source — распарсенный шрифт вместе с именем семейства из таблицы name.
type Source struct {
	font *sfnt.Font
	name string
}

func Parse(data []byte) (*Source, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		name = "unknown"
	}
	return &Source{font: f, name: name}, nil
}

func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return Parse(data)
}

// Name — имя семейства, под которым шрифт видят настройки.
func (s *Source) Name() string { return s.name }
