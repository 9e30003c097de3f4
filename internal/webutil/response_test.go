package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_keiko_flashcards/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{model.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("wrap: %w", model.ErrNotFound), http.StatusNotFound},
		{model.ErrInvalidInput, http.StatusBadRequest},
		{model.NewAppError("VALIDATION_ERROR", "msg", "name", model.ErrInvalidInput), http.StatusBadRequest},
		{model.ErrConflict, http.StatusConflict},
		{model.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{model.ErrInternalServer, http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("AppError の詳細をそのまま返す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discardLogger, model.NewAppError("COURSE_NOT_FOUND", "なし", "course_code", model.ErrInvalidInput))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":{"code":"COURSE_NOT_FOUND","message":"なし","field":"course_code"}}`, rr.Body.String())
	})

	t.Run("センチネルは汎用メッセージ", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discardLogger, model.ErrConflict)

		assert.Equal(t, http.StatusConflict, rr.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "CONFLICT", resp.Error.Code)
		assert.Empty(t, resp.Error.Field)
	})
}

func TestRespondEmpty(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondEmpty(rr)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "ok", body: `{"name":"x"}`},
		{name: "empty", body: ``, wantErr: true},
		{name: "unknown field", body: `{"name":"x","other":1}`, wantErr: true},
		{name: "broken", body: `{"name":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := DecodeJSONBody(req, &dst)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", dst.Name)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(&model.CreateCourseRequest{Name: "Algorithms"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
	assert.Equal(t, "course_code", appErr.Detail.Field)
	assert.Equal(t, "コースコードは必須項目です。", appErr.Detail.Message)

	assert.NoError(t, ValidateRequest(&model.CreateCourseRequest{Name: "Algorithms", CourseCode: "CS121"}))
}
