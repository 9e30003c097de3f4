// internal/handlers/quiz_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"go_keiko_flashcards/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestQuizHandler_Lists(t *testing.T) {
	view := &model.QuizView{Quiz: model.Quiz{ID: uuid.New(), CourseCode: "CS121", Category: "sorting", CurrentIndex: 1, StartedAt: time.Now()}, CardCount: 4, Progress: 25}

	api := newTestAPI(t, nil)
	api.quiz.On("ListQuizzes", mock.Anything).Return([]*model.QuizView{view}, nil).Once()
	api.quiz.On("ListOngoingQuizzes", mock.Anything).Return([]*model.QuizView{view}, nil).Once()
	api.quiz.On("ListCompletedQuizzes", mock.Anything).Return(nil, nil).Once()

	for _, path := range []string{"/v1/quiz", "/v1/quiz/ongoing"} {
		rr := api.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rr.Code, path)

		var got []model.QuizView
		decodeBody(t, rr, &got)
		if assert.Len(t, got, 1) {
			assert.Equal(t, int64(4), got[0].CardCount)
			assert.Equal(t, 25, got[0].Progress)
		}
	}

	rr := api.do(t, http.MethodGet, "/v1/quiz/completed", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestQuizHandler_PostQuiz(t *testing.T) {
	validReq := model.CreateQuizRequest{CourseCode: "CS121", Category: "sorting"}
	api := newTestAPI(t, nil)
	api.quiz.On("CreateQuiz", mock.Anything, &validReq).Return(&model.Quiz{ID: uuid.New(), CourseCode: "CS121", Category: "sorting"}, nil).Once()

	rr := api.do(t, http.MethodPost, "/v1/quiz", validReq)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = api.do(t, http.MethodPost, "/v1/quiz", model.CreateQuizRequest{CourseCode: "CS121"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "category", decodeError(t, rr).Field)
}

func TestQuizHandler_PatchQuizCompletion(t *testing.T) {
	quizID := uuid.New()
	api := newTestAPI(t, nil)
	now := time.Now()
	api.quiz.On("SetQuizCompletion", mock.Anything, quizID, true).
		Return(&model.Quiz{ID: quizID, IsCompleted: true, CompletedAt: &now}, nil).Once()

	rr := api.do(t, http.MethodPatch, "/v1/quiz", map[string]interface{}{"id": quizID, "is_completed": true})
	assert.Equal(t, http.StatusOK, rr.Code)
	var got model.Quiz
	decodeBody(t, rr, &got)
	assert.True(t, got.IsCompleted)

	// is_completed が無い場合はサービスを呼ばない
	rr = api.do(t, http.MethodPatch, "/v1/quiz", map[string]interface{}{"id": quizID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestQuizHandler_PatchProgress(t *testing.T) {
	quizID := uuid.New()
	base := "/v1/quiz/id/" + quizID.String()
	outOfRange := model.NewAppError("VALIDATION_ERROR", "現在位置は0以上4以下で入力してください。", "current_index", model.ErrInvalidInput)

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func(api *testAPI)
		expectedStatus int
	}{
		{
			name: "Success - index",
			path: base + "/index",
			body: map[string]int{"current_index": 3},
			setupMock: func(api *testAPI) {
				api.quiz.On("SetCurrentIndex", mock.Anything, quizID, 3).Return(&model.Quiz{ID: quizID, CurrentIndex: 3}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Fail - index out of range",
			path: base + "/index",
			body: map[string]int{"current_index": 9},
			setupMock: func(api *testAPI) {
				api.quiz.On("SetCurrentIndex", mock.Anything, quizID, 9).Return(nil, outOfRange).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - index missing",
			path:           base + "/index",
			body:           map[string]int{},
			setupMock:      func(api *testAPI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Success - correct count",
			path: base + "/correct",
			body: map[string]int{"correct_count": 0},
			setupMock: func(api *testAPI) {
				api.quiz.On("SetCorrectCount", mock.Anything, quizID, 0).Return(&model.Quiz{ID: quizID}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Success - hint",
			path: base + "/hint",
			body: map[string]bool{"hint_used": true},
			setupMock: func(api *testAPI) {
				api.quiz.On("SetHintUsed", mock.Anything, quizID, true).Return(&model.Quiz{ID: quizID, HintUsed: true}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Fail - quiz not found",
			path: base + "/hint",
			body: map[string]bool{"hint_used": false},
			setupMock: func(api *testAPI) {
				api.quiz.On("SetHintUsed", mock.Anything, quizID, false).Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Fail - invalid quiz id",
			path:           "/v1/quiz/id/xyz/index",
			body:           map[string]int{"current_index": 1},
			setupMock:      func(api *testAPI) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPI(t, nil)
			tc.setupMock(api)

			rr := api.do(t, http.MethodPatch, tc.path, tc.body)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus != http.StatusOK {
				decodeError(t, rr)
			}
		})
	}
}

func TestQuizHandler_DeleteQuiz(t *testing.T) {
	quizID := uuid.New()
	api := newTestAPI(t, nil)
	api.quiz.On("DeleteQuiz", mock.Anything, quizID).Return(quizID, nil).Once()

	rr := api.do(t, http.MethodDelete, "/v1/quiz/id/"+quizID.String(), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestQuizHandler_RenameQuiz(t *testing.T) {
	req := model.RenameQuizRequest{Old: "old", New: "new"}

	t.Run("Success", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.quiz.On("RenameQuiz", mock.Anything, "CS121", &req).
			Return(&model.RenameQuizResult{CourseCode: "CS121", Category: "new", CardsUpdated: 2, QuizzesUpdated: 1}, nil).Once()

		rr := api.do(t, http.MethodPost, "/v1/quiz/rename/CS121", req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"course_code":"CS121","category":"new","cards_updated":2,"quizzes_updated":1}`, rr.Body.String())
	})

	t.Run("Fail - nothing matched", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.quiz.On("RenameQuiz", mock.Anything, "CS121", &req).Return(nil, model.ErrNotFound).Once()

		rr := api.do(t, http.MethodPost, "/v1/quiz/rename/CS121", req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Fail - new name missing", func(t *testing.T) {
		api := newTestAPI(t, nil)

		rr := api.do(t, http.MethodPost, "/v1/quiz/rename/CS121", model.RenameQuizRequest{Old: "old"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "new", decodeError(t, rr).Field)
	})
}
