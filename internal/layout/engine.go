package layout

import (
	"fmt"

	"github.com/neocapy/friend-reader/internal/domain"
)

// Element — свёрстанный бокс: текст для отрисовки и его место в колонке.
type Element struct {
	Text   string
	Y      float64
	Height float64
}

// Bottom — нижняя грань бокса.
func (e Element) Bottom() float64 { return e.Y + e.Height }

// Engine верстает документы через внешний Measurer.
type Engine struct {
	m Measurer
}

func NewEngine(m Measurer) *Engine { return &Engine{m: m} }

// Layout раскладывает элементы документа сверху вниз начиная с y=0.
// После каждого элемента — его ParagraphSpacing, после заголовка —
// удвоенный. Заголовки и изображения верстаются текстовыми плейсхолдерами,
// картинки как боксы не поддерживаются.
func (e *Engine) Layout(doc *domain.Document, p Params) []Element {
	out := make([]Element, 0, len(doc.Elements))
	y := 0.0
	for _, el := range doc.Elements {
		text, spacing := displayText(el, p.ParagraphSpacing)
		h := e.m.Measure(text, p)
		out = append(out, Element{Text: text, Y: y, Height: h})
		y += h + spacing
	}
	return out
}

// displayText — отображаемый текст варианта и отступ после него.
func displayText(el domain.Element, spacing float64) (string, float64) {
	switch v := el.(type) {
	case domain.Text:
		return v.Content, spacing
	case domain.Heading:
		return fmt.Sprintf("[HEADING LEVEL %d] %s", v.Level, v.Content), spacing * 2
	case domain.Image:
		return fmt.Sprintf("[IMAGE: %s]", v.ID), spacing
	default:
		panic(fmt.Sprintf("layout: unhandled element %T", el))
	}
}
