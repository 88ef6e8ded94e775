package quiz

import (
	"regexp"
	"strings"
)

var (
	reSpaces = regexp.MustCompile(`\s+`)
	reDigits = regexp.MustCompile(`\d+`)
	reParts  = regexp.MustCompile(`[,\n;]+`)
)

// Normalize схлопывает пробельные последовательности, обрезает края и приводит к нижнему регистру.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(reSpaces.ReplaceAllString(s, " ")))
}

// splitParts режет ответ по запятым, точкам с запятой и переводам строк;
// пустые куски отбрасываются, остальные нормализуются.
func splitParts(raw string) []string {
	var out []string
	for _, p := range reParts.Split(raw, -1) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, Normalize(p))
	}
	return out
}

// escMarkdown — лёгкое экранирование для legacy Markdown телеграма.
func escMarkdown(s string) string {
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "[", "\\[")
	return strings.ReplaceAll(s, "`", "'")
}

// inCode готовит текст для вставки внутрь `...`.
func inCode(s string) string {
	return strings.ReplaceAll(s, "`", "'")
}
