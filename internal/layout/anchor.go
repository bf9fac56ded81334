package layout

// CaptureAnchor находит элемент, на котором сейчас "взгляд" читателя:
// первый, чья нижняя грань ниже центра вьюпорта (centerY — абсолютная
// координата, scroll + viewportH/2). Снимается ДО перевёрстки.
func CaptureAnchor(elems []Element, centerY float64) (int, bool) {
	for i, el := range elems {
		if el.Bottom() > centerY {
			return i, true
		}
	}
	return 0, false
}

// RestoreScroll возвращает прокрутку, при которой якорный элемент
// снова стоит в центре вьюпорта. Индекс из старой вёрстки может не
// существовать в новой — тогда (0, false) и прокрутку не трогают.
func RestoreScroll(elems []Element, anchor int, viewportH float64) (float64, bool) {
	if anchor < 0 || anchor >= len(elems) {
		return 0, false
	}
	return max(0, elems[anchor].Y-viewportH/2), true
}
