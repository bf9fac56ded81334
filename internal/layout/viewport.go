package layout

// VisibleRange — индексы первого и последнего элемента в окне
// [scroll, scroll+viewportH]. Граница входа — нижняя грань бокса.
// Если ниже верхней кромки ничего нет, диапазон схлопывается к началу;
// если окно ушло за конец — last указывает на последний элемент.
func VisibleRange(elems []Element, scroll, viewportH float64) (first, last int) {
	if len(elems) == 0 {
		return 0, 0
	}
	last = len(elems) - 1
	for i, el := range elems {
		if el.Bottom() > scroll {
			first = i
			break
		}
	}
	for i, el := range elems {
		if el.Bottom() > scroll+viewportH {
			last = i
			break
		}
	}
	return first, last
}

// TotalHeight — высота всей колонки как сумма (высота + spacing) по
// элементам. Двойной отступ заголовков здесь не учитывается, величина
// служит только верхней границей прокрутки.
func TotalHeight(elems []Element, spacing float64) float64 {
	total := 0.0
	for _, el := range elems {
		total += el.Height + spacing
	}
	return total
}

// ClampIndex прижимает индекс из чужой позиции к границам текущей
// вёрстки. Сервер индексы не проверяет, так что любое значение легально.
func ClampIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
