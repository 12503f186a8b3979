package model_test

import (
	"encoding/json"
	"testing"

	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	assert.Equal(t, model.BnToEn, model.ParseDirection("bn|en"))
	assert.Equal(t, model.EnToBn, model.ParseDirection("en|bn"))
	assert.Equal(t, model.EnToBn, model.ParseDirection(""))
	assert.Equal(t, model.EnToBn, model.ParseDirection("BN|EN"))
	assert.Equal(t, model.EnToBn, model.ParseDirection("fr|de"))
}

func TestDirection_Pair(t *testing.T) {
	p := model.EnToBn.Pair()
	assert.Equal(t, "en|bn", p.String())
	assert.True(t, p.EnglishIsSource)

	p = model.BnToEn.Pair()
	assert.Equal(t, "bn|en", p.String())
	assert.False(t, p.EnglishIsSource)
}

func TestTranslateRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want model.TranslateRequest
	}{
		{"bangla source", `{"text":"হ্যালো","direction":"bn|en"}`, model.TranslateRequest{Text: "হ্যালো", Direction: model.BnToEn}},
		{"explicit default", `{"text":"hi","direction":"en|bn"}`, model.TranslateRequest{Text: "hi", Direction: model.EnToBn}},
		{"missing direction", `{"text":"hi"}`, model.TranslateRequest{Text: "hi", Direction: ""}},
		{"null direction", `{"text":"hi","direction":null}`, model.TranslateRequest{Text: "hi", Direction: model.EnToBn}},
		{"numeric direction", `{"text":"hi","direction":42}`, model.TranslateRequest{Text: "hi", Direction: model.EnToBn}},
		{"unknown direction", `{"text":"hi","direction":"xx"}`, model.TranslateRequest{Text: "hi", Direction: model.EnToBn}},
		{"null text", `{"text":null}`, model.TranslateRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.TranslateRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
			// отсутствующее направление тоже даёт en|bn
			assert.Equal(t, tt.want.Direction.Pair(), got.Direction.Pair())
		})
	}
}

func TestDecodeTranslateRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    model.TranslateRequest
		wantErr error
	}{
		{name: "string text", body: `{"text":"Hello","direction":"bn|en"}`, want: model.TranslateRequest{Text: "Hello", Direction: model.BnToEn}},
		{name: "missing text", body: `{"direction":"bn|en"}`, want: model.TranslateRequest{Direction: model.BnToEn}},
		{name: "null text", body: `{"text":null}`, want: model.TranslateRequest{Direction: model.EnToBn}},
		{name: "false text", body: `{"text":false}`, want: model.TranslateRequest{Direction: model.EnToBn}},
		{name: "zero text", body: `{"text":0}`, want: model.TranslateRequest{Direction: model.EnToBn}},
		{name: "zero float text", body: `{"text":0.0}`, want: model.TranslateRequest{Direction: model.EnToBn}},
		{name: "truthy number", body: `{"text":123}`, wantErr: model.ErrInvalidText},
		{name: "true", body: `{"text":true}`, wantErr: model.ErrInvalidText},
		{name: "object text", body: `{"text":{}}`, wantErr: model.ErrInvalidText},
		{name: "null body", body: ` null `, wantErr: model.ErrNullPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.DecodeTranslateRequest([]byte(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTranslateRequest_Malformed(t *testing.T) {
	for _, body := range []string{`{"text":"hi"} garbage`, `{"text":"hi"}{}`, ``, `{"text":`, `[1]`, `"hi"`} {
		_, err := model.DecodeTranslateRequest([]byte(body))
		assert.Error(t, err, body)
	}
}
