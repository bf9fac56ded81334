package ingest

import (
	"strings"

	"github.com/neocapy/friend-reader/internal/domain"
)

// ParseContent разбирает одну главу: зачищенный от разметки текст
// режется по строкам, пустые выбрасываются, похожие на заголовок
// становятся Heading первого уровня, остальные — абзацами.
func ParseContent(html string) domain.Elements {
	var out domain.Elements
	for _, line := range strings.Split(StripTags(html), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if likelyHeading(trimmed) {
			out = append(out, domain.Heading{Content: trimmed, Level: 1})
		} else {
			out = append(out, domain.Text{Content: trimmed})
		}
	}
	return out
}

// StripTags выбрасывает HTML-разметку без полноценного парсера: теги
// исчезают бесследно, содержимое <script>/<style> выкидывается целиком.
// Абзацная структура берётся из переводов строк исходника, поэтому
// почти все EPUB-генераторы дают осмысленное членение.
func StripTags(html string) string {
	var b strings.Builder
	b.Grow(len(html))

	runes := []rune(html)
	inSkip := false
	i := 0
	for i < len(runes) {
		if runes[i] != '<' {
			if !inSkip {
				b.WriteRune(runes[i])
			}
			i++
			continue
		}
		start := i
		for i < len(runes) && runes[i] != '>' {
			i++
		}
		if i < len(runes) {
			i++ // сам '>'
		}
		tag := strings.ToLower(string(runes[start:i]))
		switch {
		case strings.Contains(tag, "<script"), strings.Contains(tag, "<style"):
			inSkip = true
		case strings.Contains(tag, "</script"), strings.Contains(tag, "</style"):
			inSkip = false
		}
	}

	return decodeEntities(b.String())
}

// decodeEntities — пять базовых сущностей, последовательными проходами.
// Проходы упорядочены: &amp; раскрывается до &lt;/&gt;, поэтому
// "&amp;lt;" схлопывается до "<".
func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&apos;", "'")
	return s
}
