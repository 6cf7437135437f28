// Package locale нормализует языковые теги и строит цепочку запасных локалей.
package locale

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize приводит тег к каноническому виду в нижнем регистре ("zh_Hant" -> "zh-hant").
// Некорректный тег возвращается как есть (в нижнем регистре, "_" заменяется на "-").
func Normalize(tag string) string {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return ""
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return strings.ToLower(tag)
	}
	return strings.ToLower(parsed.String())
}

// Candidates возвращает локали от самой точной к самой общей:
// "zh-Hant-HK" -> ["zh-hant-hk", "zh-hant", "zh"]. Пустой тег даёт пустой список.
func Candidates(tag string) []string {
	normalized := Normalize(tag)
	if normalized == "" {
		return nil
	}

	candidates := []string{normalized}
	seen := map[string]bool{normalized: true}
	add := func(c string) {
		if c != "" && c != "und" && !seen[c] {
			seen[c] = true
			candidates = append(candidates, c)
		}
	}

	parsed, err := language.Parse(normalized)
	if err != nil {
		parts := strings.Split(normalized, "-")
		for i := len(parts) - 1; i > 0; i-- {
			add(strings.Join(parts[:i], "-"))
		}
		return candidates
	}

	// Parent() для zh-Hant-HK даёт zh-Hant, но для zh-Hant сразу und:
	// поэтому дополнительно отрезаем подтеги справа
	for p := parsed.Parent(); !p.IsRoot(); p = p.Parent() {
		add(strings.ToLower(p.String()))
	}
	parts := strings.Split(normalized, "-")
	for i := len(parts) - 1; i > 0; i-- {
		add(strings.Join(parts[:i], "-"))
	}

	return candidates
}

// Lookup ищет значение по цепочке кандидатов. Ключи словаря должны быть нормализованы.
func Lookup[T any](values map[string]T, tag string) (T, string, bool) {
	for _, candidate := range Candidates(tag) {
		if v, ok := values[candidate]; ok {
			return v, candidate, true
		}
	}
	var zero T
	return zero, "", false
}

// Upper переводит строку в верхний регистр по правилам языка (например, турецкая i)
func Upper(s, tag string) string {
	if s == "" {
		return s
	}
	t, err := language.Parse(Normalize(tag))
	if err != nil {
		t = language.Und
	}
	return cases.Upper(t).String(s)
}
