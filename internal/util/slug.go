package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify приводит текст к нижнему регистру и заменяет каждую
// последовательность пробельных символов одним дефисом.
// Пунктуация сохраняется, обрезка краёв не выполняется.
//
//	Slugify("Hello   World") // "hello-world"
//	Slugify("Hi, there!")    // "hi,-there!"
func Slugify(text string) string {
	// Caser хранит состояние, поэтому создаётся на каждый вызов
	lower := cases.Lower(language.Und).String(text)

	var b strings.Builder
	b.Grow(len(lower))
	inSpace := false
	for _, r := range lower {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// isSpace совпадает с классом \s в JavaScript: Unicode White_Space
// плюс U+FEFF, но без U+0085.
func isSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Combine склеивает слаг и перевод для отображения.
func Combine(formatted, translated string) string {
	return formatted + " → " + translated
}
