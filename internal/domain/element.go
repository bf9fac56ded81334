package domain

import (
	"encoding/json"
	"fmt"
)

// Дискриминатор варианта в JSON-поле "type".
const (
	elemText    = "text"
	elemHeading = "heading"
	elemImage   = "image"
)

// Element — закрытая сумма вариантов контента. Новые варианты добавляются
// только здесь; каждая точка потребления разбирает все три варианта
// type switch'ем и не пропускает неизвестное молча.
type Element interface {
	isElement()
}

// Text — абзац сплошного текста. Пустой Content допустим.
type Text struct {
	Content string
}

// Heading — заголовок уровня Level (1..6 по соглашению, не проверяется).
type Heading struct {
	Content string
	Level   int
}

// Image — ссылка на ресурс изображения; бинарник отдаётся отдельно
// по GET /images/{id}.
type Image struct {
	ID  string
	URL string
}

func (Text) isElement()    {}
func (Heading) isElement() {}
func (Image) isElement()   {}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	}{elemText, t.Content})
}

func (h Heading) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content string `json:"content"`
		Level   int    `json:"level"`
	}{elemHeading, h.Content, h.Level})
}

func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		URL  string `json:"url"`
	}{elemImage, i.ID, i.URL})
}

// Elements — список элементов с тег-диспатчем при декодировании.
type Elements []Element

func (e *Elements) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Elements, 0, len(raws))
	for i, raw := range raws {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &tag); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		switch tag.Type {
		case elemText:
			var v struct {
				Content string `json:"content"`
			}
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, Text{Content: v.Content})
		case elemHeading:
			var v struct {
				Content string `json:"content"`
				Level   int    `json:"level"`
			}
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, Heading{Content: v.Content, Level: v.Level})
		case elemImage:
			var v struct {
				ID  string `json:"id"`
				URL string `json:"url"`
			}
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, Image{ID: v.ID, URL: v.URL})
		default:
			return fmt.Errorf("element %d: unknown type %q", i, tag.Type)
		}
	}
	*e = out
	return nil
}
