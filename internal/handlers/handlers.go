package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/Totarae/TranslateApp/internal/service"
	"go.uber.org/zap"
)

// Translator операция перевода, которую обслуживает HTTP-обработчик.
type Translator interface {
	Translate(ctx context.Context, req model.TranslateRequest) (*model.TranslateResponse, error)
}

type Handler struct {
	Service Translator
	Logger  *zap.Logger
}

func NewHandler(svc Translator, logger *zap.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  logger,
	}
}

// Translate обрабатывает POST /api/translate.
// Ошибка разбора тела, как и любая ошибка перевода, отдаётся клиенту
// как 500 "Translation failed"; причина остаётся только в логе.
func (h *Handler) Translate(res http.ResponseWriter, req *http.Request) {
	data, err := io.ReadAll(req.Body)
	if err != nil {
		h.Logger.Error("Translation error", zap.String("stage", "read"), zap.Error(err))
		writeError(res, http.StatusInternalServerError, service.ErrTranslationFailed)
		return
	}
	body, err := model.DecodeTranslateRequest(data)
	if err != nil {
		h.Logger.Error("Translation error", zap.String("stage", "decode"), zap.Error(err))
		writeError(res, http.StatusInternalServerError, service.ErrTranslationFailed)
		return
	}

	result, err := h.Service.Translate(req.Context(), body)
	if err != nil {
		status, public := StatusFor(err)
		writeError(res, status, public)
		return
	}

	writeJSON(res, http.StatusOK, result)
}

// Ping проверка живости сервиса.
func (h *Handler) Ping(res http.ResponseWriter, _ *http.Request) {
	res.Header().Set("Content-Type", "text/plain")
	res.WriteHeader(http.StatusOK)
	res.Write([]byte("pong"))
}

// StatusFor сопоставляет ошибку сервиса HTTP-статусу и публичной ошибке.
func StatusFor(err error) (int, error) {
	if errors.Is(err, service.ErrNoText) {
		return http.StatusBadRequest, service.ErrNoText
	}
	return http.StatusInternalServerError, service.ErrTranslationFailed
}

func writeError(res http.ResponseWriter, status int, err error) {
	writeJSON(res, status, model.ErrorResponse{Error: err.Error()})
}

func writeJSON(res http.ResponseWriter, status int, v any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	json.NewEncoder(res).Encode(v)
}
