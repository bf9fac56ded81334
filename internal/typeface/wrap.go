package typeface

// Жадный перенос одной «жёсткой» строки: считаем, сколько визуальных
// строк она займёт в колонке maxW. Точки переноса — пробелы и границы
// CJK-иероглифов; слово шире колонки рубится по ширине. Этого хватает
// для оценки высоты, полноценный line breaking здесь не нужен.
func wrapLine(line string, maxW float64, adv func(rune) float64) int {
	if line == "" {
		return 1
	}
	if maxW <= 0 {
		return 1
	}

	lines := 1
	var lineW, wordW float64

	commit := func() {
		if wordW == 0 {
			return
		}
		if lineW > 0 && lineW+wordW > maxW {
			lines++
			lineW = 0
		}
		for wordW > maxW {
			lines++
			wordW -= maxW
		}
		lineW += wordW
		wordW = 0
	}

	for _, r := range line {
		w := adv(r)
		switch {
		case r == ' ' || r == '\t':
			commit()
			// хвостовой пробел может выступать за край, строку не ломаем
			lineW += w
		case isCJK(r):
			commit()
			if lineW > 0 && lineW+w > maxW {
				lines++
				lineW = 0
			}
			lineW += w
		default:
			wordW += w
		}
	}
	commit()
	return lines
}

// isCJK — руны, переносимые по одной (без понятия «слова»).
func isCJK(r rune) bool {
	switch {
	case r >= 0x3000 && r <= 0x303F: // CJK пунктуация
		return true
	case r >= 0x3040 && r <= 0x30FF: // хирагана + катакана
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK расширение A
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK основной блок
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // хангыль
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK совместимость
		return true
	}
	return false
}
