package model

import (
	"encoding/json"

	"golang.org/x/text/language"
)

// Direction задаёт, на каком языке написан входной текст.
type Direction string

const (
	// EnToBn английский → бенгальский, направление по умолчанию.
	EnToBn Direction = "en|bn"
	// BnToEn бенгальский → английский.
	BnToEn Direction = "bn|en"
)

// LangPair описывает один вызов переводчика.
type LangPair struct {
	Source language.Tag
	Target language.Tag
	// EnglishIsSource true, если английский текст уже есть на входе.
	EnglishIsSource bool
}

// String возвращает пару в формате MyMemory: "en|bn".
func (p LangPair) String() string {
	return p.Source.String() + "|" + p.Target.String()
}

// ParseDirection возвращает BnToEn только для строки "bn|en", иначе EnToBn.
func ParseDirection(s string) Direction {
	if Direction(s) == BnToEn {
		return BnToEn
	}
	return EnToBn
}

// Pair отображает направление в пару языков.
func (d Direction) Pair() LangPair {
	if d == BnToEn {
		return LangPair{Source: language.Bengali, Target: language.English}
	}
	return LangPair{Source: language.English, Target: language.Bengali, EnglishIsSource: true}
}

// UnmarshalJSON принимает любое JSON-значение: всё, кроме строки "bn|en",
// трактуется как направление по умолчанию.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = EnToBn
		return nil
	}
	*d = ParseDirection(s)
	return nil
}
