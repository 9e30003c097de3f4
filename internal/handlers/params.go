package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parseUUIDParam はURLパラメータをUUIDとして取り出します。
// 失敗時はエラーレスポンスを書き込んで false を返します。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String(name+"_str", raw), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// requireStringParam は空でないURLパラメータを取り出します
func requireStringParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (string, bool) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		logger.Warn("Missing URL parameter", slog.String("param", name))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"が指定されていません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return "", false
	}
	return value, true
}

// decodeAndValidate はボディをデコードし、validate タグで検証します。
// 失敗時はエラーレスポンスを書き込んで false を返します。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if err := webutil.ValidateRequest(dst); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err), slog.Any("request", dst))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
