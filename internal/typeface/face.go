package typeface

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face — Source при конкретном кегле. Держит sfnt.Buffer и кэш
// продвижений глифов, поэтому НЕ потокобезопасна; синхронизацию
// обеспечивает Measurer.
type Face struct {
	src  *Source
	ppem fixed.Int26_6
	buf  sfnt.Buffer

	lineHeight float64
	notdef     float64
	adv        map[rune]float64
}

func newFace(src *Source, size float64) (*Face, error) {
	f := &Face{
		src:  src,
		ppem: fixed.Int26_6(size * 64),
		adv:  make(map[rune]float64),
	}
	m, err := src.font.Metrics(&f.buf, f.ppem, font.HintingFull)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	f.lineHeight = fixedToFloat(m.Height)
	f.notdef = f.rawAdvance('?')
	return f, nil
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64.0 }

// LineHeight — рекомендованный шрифтом межстрочный шаг.
func (f *Face) LineHeight() float64 { return f.lineHeight }

// Advance — ширина руны; для отсутствующих глифов ширина '?'.
func (f *Face) Advance(r rune) float64 {
	if w, ok := f.adv[r]; ok {
		return w
	}
	w := f.rawAdvance(r)
	if w == 0 && r != ' ' {
		w = f.notdef
	}
	f.adv[r] = w
	return w
}

func (f *Face) rawAdvance(r rune) float64 {
	gi, err := f.src.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	a, err := f.src.font.GlyphAdvance(&f.buf, gi, f.ppem, font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(a)
}

// MeasureHeight — высота текста, свёрнутого в колонку width.
// Пустой текст занимает ноль строк, пустая строка внутри текста — одну.
func (f *Face) MeasureHeight(text string, width float64) float64 {
	if text == "" {
		return 0
	}
	lines := 0
	for _, hard := range strings.Split(text, "\n") {
		lines += wrapLine(hard, width, f.Advance)
	}
	return float64(lines) * f.lineHeight
}
