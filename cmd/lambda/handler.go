package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/Totarae/TranslateApp/internal/handlers"
	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/Totarae/TranslateApp/internal/service"
	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type handler struct {
	svc    handlers.Translator
	logger *zap.Logger
	warmer warmFunc
}

func newHandler(svc handlers.Translator, logger *zap.Logger, warmer warmFunc) *handler {
	return &handler{svc: svc, logger: logger, warmer: warmer}
}

// Handle сначала отсекает события прогрева, остальное разбирается как
// запрос API Gateway proxy.
func (h *handler) Handle(ctx context.Context, event json.RawMessage) (any, error) {
	if warmup, ok := IsWarmupEvent(event); ok {
		return h.handleWarmup(ctx, warmup), nil
	}

	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(event, &req); err != nil {
		h.logger.Error("Translation error", zap.String("stage", "event"), zap.Error(err))
		return failure(), nil
	}
	return h.translate(ctx, req), nil
}

func (h *handler) translate(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			h.logger.Error("Translation error", zap.String("stage", "base64"), zap.Error(err))
			return failure()
		}
		body = decoded
	}

	in, err := model.DecodeTranslateRequest(body)
	if err != nil {
		h.logger.Error("Translation error", zap.String("stage", "decode"), zap.Error(err))
		return failure()
	}

	result, err := h.svc.Translate(ctx, in)
	if err != nil {
		status, public := handlers.StatusFor(err)
		return jsonResponse(status, model.ErrorResponse{Error: public.Error()})
	}
	return jsonResponse(http.StatusOK, result)
}

func failure() events.APIGatewayProxyResponse {
	return jsonResponse(http.StatusInternalServerError, model.ErrorResponse{Error: service.ErrTranslationFailed.Error()})
}

func jsonResponse(status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"Translation failed"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
