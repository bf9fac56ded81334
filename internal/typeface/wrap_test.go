package typeface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Моноширинная модель: любой глиф 10px.
func fixedAdv(r rune) float64 { return 10 }

func TestWrapLineFitsWhole(t *testing.T) {
	assert.Equal(t, 1, wrapLine("hello", 100, fixedAdv))
	assert.Equal(t, 1, wrapLine("", 100, fixedAdv), "empty hard line still occupies a line")
}

func TestWrapLineBreaksOnSpaces(t *testing.T) {
	// "aaaa bbbb cccc": по 40px на слово, колонка 90px.
	// aaaa+пробел+bbbb = 90 → cccc уходит на вторую строку.
	assert.Equal(t, 2, wrapLine("aaaa bbbb cccc", 90, fixedAdv))
	// в колонку 50px каждое слово садится на свою строку
	assert.Equal(t, 3, wrapLine("aaaa bbbb cccc", 50, fixedAdv))
}

func TestWrapLineTrailingSpaceOverflows(t *testing.T) {
	// пробел после слова выступает за край, но строку не добавляет
	assert.Equal(t, 1, wrapLine("aaaa ", 40, fixedAdv))
}

func TestWrapLineLongWordChopped(t *testing.T) {
	// слово 250px в колонке 100px: 3 строки
	assert.Equal(t, 3, wrapLine("aaaaaaaaaaaaaaaaaaaaaaaaa", 100, fixedAdv))
	// и хвост делит строку с последующим коротким словом
	assert.Equal(t, 3, wrapLine("aaaaaaaaaaaaaaaaaaaaaaaaa bb", 100, fixedAdv))
}

func TestWrapLineCJKPerRune(t *testing.T) {
	// пять иероглифов по 10px в колонке 25px: по два на строку
	assert.Equal(t, 3, wrapLine("字字字字字", 25, fixedAdv))
	// смешанный текст: латинское слово не рвётся, CJK — по рунам
	assert.Equal(t, 2, wrapLine("abc字字", 40, fixedAdv))
}

func TestWrapLineDegenerateWidth(t *testing.T) {
	assert.Equal(t, 1, wrapLine("anything", 0, fixedAdv))
	assert.Equal(t, 1, wrapLine("anything", -5, fixedAdv))
}

func TestIsCJK(t *testing.T) {
	assert.True(t, isCJK('字'))
	assert.True(t, isCJK('あ'))
	assert.True(t, isCJK('한'))
	assert.False(t, isCJK('a'))
	assert.False(t, isCJK('я'))
}
