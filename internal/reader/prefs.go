package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/neocapy/friend-reader/internal/domain"
)

// Prefs — настройки отображения. Сессия применяет их на следующем тике;
// смена шрифта/кегля/отступа перевёрстывает документ с сохранением
// позиции чтения.
type Prefs struct {
	// FontFamily — имя семейства для Measurer; пустое — первый
	// зарегистрированный шрифт.
	FontFamily       string  `yaml:"font_family"`
	FontSize         float64 `yaml:"font_size"`
	ParagraphSpacing float64 `yaml:"paragraph_spacing"`
	// ContentWidth — желаемая ширина колонки; тик прижимает её к
	// [MinContentWidth, доступная ширина].
	ContentWidth float64 `yaml:"content_width"`
	Foreground   string  `yaml:"foreground"`
	Background   string  `yaml:"background"`
}

func DefaultPrefs() Prefs {
	return Prefs{
		FontSize:         18.0,
		ParagraphSpacing: 10.0,
		ContentWidth:     600.0,
		Foreground:       "#000000",
		Background:       "#ffffff",
	}
}

// LoadPrefs читает настройки; отсутствие файла — не ошибка, а дефолты.
// Неуказанные поля тоже добиваются дефолтами.
func LoadPrefs(path string) (Prefs, error) {
	p := DefaultPrefs()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), fmt.Errorf("decode prefs %s: %w", path, err)
	}
	p.sanitize()
	return p, nil
}

// Save пишет настройки, создавая каталог при необходимости.
func (p Prefs) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create prefs dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs %s: %w", path, err)
	}
	return nil
}

// sanitize чинит значения, с которыми тик не сможет работать.
func (p *Prefs) sanitize() {
	if p.FontSize <= 0 {
		p.FontSize = DefaultPrefs().FontSize
	}
	if p.ParagraphSpacing < 0 {
		p.ParagraphSpacing = DefaultPrefs().ParagraphSpacing
	}
	if p.ContentWidth < MinContentWidth {
		p.ContentWidth = DefaultPrefs().ContentWidth
	}
	if !domain.ValidColor(p.Foreground) {
		p.Foreground = DefaultPrefs().Foreground
	} else {
		p.Foreground = strings.ToLower(p.Foreground)
	}
	if !domain.ValidColor(p.Background) {
		p.Background = DefaultPrefs().Background
	} else {
		p.Background = strings.ToLower(p.Background)
	}
}
