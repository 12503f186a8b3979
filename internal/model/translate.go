package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNullPayload тело запроса равно JSON null.
	ErrNullPayload = errors.New("payload is null")
	// ErrInvalidText поле text не строка и не ложное значение.
	ErrInvalidText = errors.New("text must be a string")
)

// TranslateRequest представляет структуру запроса на перевод.
type TranslateRequest struct {
	Text      string    `json:"text"`
	Direction Direction `json:"direction"`
}

// TranslateResponse представляет структуру ответа с переводом и слагом.
type TranslateResponse struct {
	Formatted  string `json:"formatted"`
	Translated string `json:"translated"`
	Combined   string `json:"combined"`
}

// ErrorResponse тело ответа при ошибке.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeTranslateRequest разбирает тело запроса целиком: данные после
// объекта и null считаются ошибкой. Ложные значения text (false, 0, null)
// дают пустой текст, прочие нестроковые значения дают ErrInvalidText.
func DecodeTranslateRequest(data []byte) (TranslateRequest, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return TranslateRequest{}, ErrNullPayload
	}

	var raw struct {
		Text      json.RawMessage `json:"text"`
		Direction Direction       `json:"direction"`
	}
	raw.Direction = EnToBn
	if err := json.Unmarshal(data, &raw); err != nil {
		return TranslateRequest{}, err
	}

	text, err := decodeText(raw.Text)
	if err != nil {
		return TranslateRequest{}, err
	}
	return TranslateRequest{Text: text, Direction: raw.Direction}, nil
}

func decodeText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		if !t {
			return "", nil
		}
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return "", nil
		}
	}
	return "", fmt.Errorf("%w: got %s", ErrInvalidText, raw)
}
