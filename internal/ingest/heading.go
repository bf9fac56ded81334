package ingest

import (
	"strings"
	"unicode"
)

// likelyHeading — эвристика «эта строка похожа на заголовок».
// Длина в байтах: порог отсекает и длинные кириллические строки,
// просто вдвое раньше по числу букв.
func likelyHeading(text string) bool {
	if len(text) > 100 {
		return false
	}
	if len(strings.Fields(text)) > 15 {
		return false
	}

	upper, alpha := 0, 0
	for _, r := range text {
		if unicode.IsUpper(r) {
			upper++
		}
		if unicode.IsLetter(r) {
			alpha++
		}
	}
	if alpha > 0 && float64(upper)/float64(alpha) > 0.3 {
		return true
	}

	return strings.HasPrefix(text, "Chapter") || strings.HasPrefix(text, "CHAPTER")
}
