// Package layout превращает документ в вертикальную колонку боксов
// с абсолютными координатами. Верстка детерминирована: одинаковые
// документ и параметры дают одинаковый результат, поэтому индекс
// элемента — стабильный адрес и для якоря прокрутки, и для протокола
// присутствия.
package layout

import "math"

// Допуски перевёрстки. Дрожание ширины окна в пределах пикселя и
// шум float-настроек не должны вызывать реflow.
const (
	widthTolerance = 1.0
	paramTolerance = 0.1
)

// Params — входные параметры вёрстки.
type Params struct {
	// Width — ширина колонки контента в пикселях.
	Width float64
	// Font — имя семейства; для движка это непрозрачный ключ,
	// его интерпретирует Measurer.
	Font string
	// Size — кегль в пикселях.
	Size float64
	// ParagraphSpacing — базовый вертикальный отступ между элементами.
	ParagraphSpacing float64
}

// Differs — нужна ли перевёрстка при переходе от prev к p.
// Ширина сравнивается с допуском 1.0, кегль и отступ — 0.1,
// смена шрифта перевёрстывает всегда.
func (p Params) Differs(prev Params) bool {
	if p.Font != prev.Font {
		return true
	}
	if math.Abs(p.Width-prev.Width) > widthTolerance {
		return true
	}
	if math.Abs(p.Size-prev.Size) > paramTolerance {
		return true
	}
	return math.Abs(p.ParagraphSpacing-prev.ParagraphSpacing) > paramTolerance
}
