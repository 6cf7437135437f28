package domain

import (
	"regexp"
	"sort"
	"strings"
)

var (
	leadingPunctuationRe = regexp.MustCompile(`^[-,]+`)
	whitespaceRunRe      = regexp.MustCompile(`\s\s+`)
)

// ReplacePlaceholders подставляет значения в шаблон за один проход и очищает результат.
// Ключи - токены ("%locality"), значения обрезаются по краям. Подставленный текст
// повторно не обрабатывается, при пересечении токенов побеждает самый длинный.
func ReplacePlaceholders(template string, replacements map[string]string) string {
	tokens := make([]string, 0, len(replacements))
	for token := range replacements {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	pairs := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		pairs = append(pairs, token, strings.TrimSpace(replacements[token]))
	}

	return CleanupLines(strings.NewReplacer(pairs...).Replace(template))
}

// CleanupLines убирает артефакты пустых плейсхолдеров построчно:
// одну ведущую серию "-"/",", повторяющиеся пробелы и пустые строки.
func CleanupLines(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(leadingPunctuationRe.ReplaceAllString(line, ""))
		line = whitespaceRunRe.ReplaceAllString(line, " ")
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
