package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// MatchPostalCode проверяет индекс по правилам включения и исключения.
// Правило - регулярное выражение в слешах ("/^9[0-5]/") или список кодов
// и числовых диапазонов через запятую ("98, 100:200"). Пустое правило не ограничивает.
func MatchPostalCode(postalCode, includeRule, excludeRule string) bool {
	match := true
	if includeRule != "" {
		match = matchPostalCodeRule(postalCode, includeRule)
	}
	if match && excludeRule != "" {
		match = !matchPostalCodeRule(postalCode, excludeRule)
	}
	return match
}

func matchPostalCodeRule(postalCode, rule string) bool {
	if len(rule) >= 2 && strings.HasPrefix(rule, "/") && strings.HasSuffix(rule, "/") {
		re, err := regexp.Compile(rule[1 : len(rule)-1])
		if err != nil {
			return false
		}
		return re.MatchString(postalCode)
	}

	for _, item := range strings.Split(rule, ",") {
		item = strings.TrimSpace(item)
		if start, end, isRange := strings.Cut(item, ":"); isRange {
			if inNumericRange(postalCode, start, end) {
				return true
			}
			continue
		}
		if item == postalCode {
			return true
		}
	}
	return false
}

// inNumericRange сравнивает численно: "0123" попадает в диапазон 100:200
func inNumericRange(postalCode, start, end string) bool {
	from, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return false
	}
	to, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return false
	}
	code, err := strconv.Atoi(strings.TrimSpace(postalCode))
	if err != nil {
		return false
	}
	if from > to {
		from, to = to, from
	}
	return code >= from && code <= to
}
