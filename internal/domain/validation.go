package domain

import (
	"regexp"
	"strings"
)

// Цвет курсора читателя: строго #rrggbb. Регистр цифр не важен.
var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultColor подставляется, когда клиент не выбрал валидный цвет.
const DefaultColor = "#6496ff"

func ValidColor(s string) bool {
	return colorRe.MatchString(s)
}

// NormalizeColor приводит валидный цвет к нижнему регистру,
// невалидный заменяет на DefaultColor.
func NormalizeColor(s string) string {
	if !ValidColor(s) {
		return DefaultColor
	}
	return strings.ToLower(s)
}

// ValidName — display name не пуст после обрезки пробелов.
// Сервер имена не проверяет, это клиентское правило входа.
func ValidName(s string) bool {
	return strings.TrimSpace(s) != ""
}
