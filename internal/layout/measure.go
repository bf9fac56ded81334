package layout

// Measurer отвечает на единственный вопрос вёрстки: какой высоты
// получится текст, свёрнутый в колонку шириной p.Width при шрифте
// p.Font и кегле p.Size. Пустой текст — высота 0.
type Measurer interface {
	Measure(text string, p Params) float64
}

// MeasureFunc — адаптер функции к Measurer.
type MeasureFunc func(text string, p Params) float64

func (f MeasureFunc) Measure(text string, p Params) float64 { return f(text, p) }
