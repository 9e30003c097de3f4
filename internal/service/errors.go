package service

import (
	"context"
	"errors"
	"strings"

	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"
)

// passThroughErrors はハンドラまでそのまま返すエラー種別
var passThroughErrors = []error{
	model.ErrNotFound,
	model.ErrInvalidInput,
	model.ErrConflict,
	model.ErrStorageUnavailable,
}

// normalizeError は既知のエラー種別はそのまま返し、それ以外はログに残して ErrInternalServer にまとめます
func normalizeError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	for _, target := range passThroughErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	middleware.GetLogger(ctx).Error("Unexpected error", "op", op, "error", err)
	return model.ErrInternalServer
}

func validationError(field, message string) error {
	return model.NewAppError("VALIDATION_ERROR", message, field, model.ErrInvalidInput)
}

func requireText(field, label, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError(field, label+"は必須項目です。")
	}
	return nil
}
