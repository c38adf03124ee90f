package utils

import (
	"strconv"
	"time"
)

// ParseCheckbox — явное соответствие для чекбокса HTML-формы:
// строго строка "on" означает true, любое другое значение (включая пустое) — false.
func ParseCheckbox(value string) bool {
	return value == "on"
}

// ParseLimit разбирает лимит выборки; при пустом или нечисловом значении — def.
func ParseLimit(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// DisplayDate форматирует дату создания как D-MM-YYYY:
// день без ведущего нуля, месяц с ведущим нулём.
func DisplayDate(t time.Time) string {
	return t.Format("2-01-2006")
}
