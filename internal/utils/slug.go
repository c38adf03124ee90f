package utils

import (
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify превращает заголовок в URL-безопасный слаг: нижний регистр,
// последовательности не-буквенно-цифровых символов схлопываются в один дефис,
// дефисы по краям обрезаются. Детерминированно и идемпотентно.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonAlnumRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
