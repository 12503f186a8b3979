package client

import (
	"strings"

	"github.com/Totarae/TranslateApp/internal/model"
)

// FailureMessage показывается вместо результата, если перевод не удался.
const FailureMessage = "❌ Translation failed. Try again!"

// Field поле результата, которое можно скопировать.
type Field string

const (
	FieldNone       Field = ""
	FieldFormatted  Field = "formatted"
	FieldTranslated Field = "translated"
)

// State снимок состояния интерфейса. Методы не меняют получателя
// и возвращают новый снимок.
type State struct {
	Text      string
	Direction model.Direction
	Result    model.TranslateResponse
	Loading   bool
	Copied    Field
}

// NewState начальное состояние: пустой текст, направление en|bn.
func NewState() State {
	return State{Direction: model.EnToBn}
}

func (s State) SetText(text string) State {
	s.Text = text
	return s
}

// Submit переводит в состояние загрузки. Текст из одних пробелов
// не отправляется: ok == false и состояние не меняется.
func (s State) Submit() (State, bool) {
	if strings.TrimSpace(s.Text) == "" {
		return s, false
	}
	s.Loading = true
	return s, true
}

func (s State) Succeed(res model.TranslateResponse) State {
	s.Loading = false
	s.Result = res
	return s
}

func (s State) Fail() State {
	s.Loading = false
	s.Result = model.TranslateResponse{Combined: FailureMessage}
	return s
}

// Copy возвращает значение поля для буфера обмена; пустое поле не копируется.
func (s State) Copy(f Field) (State, string, bool) {
	var value string
	switch f {
	case FieldFormatted:
		value = s.Result.Formatted
	case FieldTranslated:
		value = s.Result.Translated
	}
	if value == "" {
		return s, "", false
	}
	s.Copied = f
	return s, value, true
}

func (s State) ResetCopied() State {
	s.Copied = FieldNone
	return s
}

// Toggle меняет направление и сбрасывает результат.
func (s State) Toggle() State {
	if s.Direction == model.BnToEn {
		s.Direction = model.EnToBn
	} else {
		s.Direction = model.BnToEn
	}
	s.Result = model.TranslateResponse{}
	return s
}

// Clear очищает текст и результат, направление сохраняется.
func (s State) Clear() State {
	s.Text = ""
	s.Result = model.TranslateResponse{}
	return s
}

// Label подпись направления.
func (s State) Label() string {
	if s.Direction == model.BnToEn {
		return "Bangla → English"
	}
	return "English → Bangla"
}
