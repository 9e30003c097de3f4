// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_keiko_flashcards/internal/handlers"
	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakePinger は Health 用の疎通確認スタブ
type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

// testAPI はサービスをモックにしたルーター一式
type testAPI struct {
	router http.Handler
	course *mocks.CourseService
	card   *mocks.CardService
	quiz   *mocks.QuizService
}

func newTestAPI(t *testing.T, pingErr error) *testAPI {
	t.Helper()
	api := &testAPI{
		course: mocks.NewCourseService(t),
		card:   mocks.NewCardService(t),
		quiz:   mocks.NewQuizService(t),
	}
	r := chi.NewRouter()
	handlers.RegisterRoutes(r, handlers.Handlers{
		Course: handlers.NewCourseHandler(api.course, testLogger),
		Card:   handlers.NewCardHandler(api.card, testLogger),
		Quiz:   handlers.NewQuizHandler(api.quiz, testLogger),
		Health: handlers.NewHealthHandler(fakePinger{err: pingErr}, testLogger),
	})
	api.router = r
	return api
}

// do はリクエストを組み立てて router に流します。body が string ならそのまま送ります。
func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスのボディを検証し、エラー詳細を返します
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "error body should be JSON: %s", rr.Body.String())
	assert.NotEmpty(t, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
	return resp.Error
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), "body: %s", rr.Body.String())
}
