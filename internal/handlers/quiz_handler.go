// internal/handlers/quiz_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/service"
	"go_keiko_flashcards/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

func (h *QuizHandler) respondQuizViews(w http.ResponseWriter, logger *slog.Logger, quizzes []*model.QuizView, err error) {
	if err != nil {
		logger.Error("Error listing quizzes in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if quizzes == nil {
		quizzes = []*model.QuizView{}
	}
	logger.Info("Quizzes listed successfully", slog.Int("count", len(quizzes)))
	webutil.RespondWithJSON(w, http.StatusOK, quizzes, logger)
}

func (h *QuizHandler) respondQuiz(w http.ResponseWriter, logger *slog.Logger, quiz *model.Quiz, err error, action string) {
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Quiz not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error "+action+" quiz in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Quiz "+action+" successfully", slog.String("quiz_id", quiz.ID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, quiz, logger)
}

// GetQuizzes は全クイズ (進捗付き) を返すハンドラ
func (h *QuizHandler) GetQuizzes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuizzes"))
	quizzes, err := h.service.ListQuizzes(r.Context())
	h.respondQuizViews(w, logger, quizzes, err)
}

// GetOngoingQuizzes は未完了のクイズを返すハンドラ
func (h *QuizHandler) GetOngoingQuizzes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetOngoingQuizzes"))
	quizzes, err := h.service.ListOngoingQuizzes(r.Context())
	h.respondQuizViews(w, logger, quizzes, err)
}

// GetCompletedQuizzes は完了済みのクイズを返すハンドラ
func (h *QuizHandler) GetCompletedQuizzes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCompletedQuizzes"))
	quizzes, err := h.service.ListCompletedQuizzes(r.Context())
	h.respondQuizViews(w, logger, quizzes, err)
}

// GetQuiz は特定のクイズを返すハンドラ
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuiz"))

	quizID, ok := parseUUIDParam(w, r, logger, "quiz_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("quiz_id", quizID.String()))

	quiz, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Quiz not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting quiz from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, quiz, logger)
}

// PostQuiz は新しいクイズを開始するハンドラ
func (h *QuizHandler) PostQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuiz"))

	var req model.CreateQuizRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), &req)
	h.respondQuiz(w, logger, quiz, err, "created")
}

// PutQuiz はクイズの状態を全体更新するハンドラ
func (h *QuizHandler) PutQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutQuiz"))

	var req model.UpdateQuizRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	logger = logger.With(slog.String("quiz_id", req.ID.String()))

	quiz, err := h.service.UpdateQuiz(r.Context(), &req)
	h.respondQuiz(w, logger, quiz, err, "updated")
}

// PatchQuizCompletion はクイズの完了・再開を切り替えるハンドラ
func (h *QuizHandler) PatchQuizCompletion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchQuizCompletion"))

	var req model.QuizCompletionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	logger = logger.With(slog.String("quiz_id", req.ID.String()), slog.Bool("is_completed", *req.IsCompleted))

	quiz, err := h.service.SetQuizCompletion(r.Context(), req.ID, *req.IsCompleted)
	h.respondQuiz(w, logger, quiz, err, "completion updated")
}

// PatchCurrentIndex はクイズの現在位置を更新するハンドラ
func (h *QuizHandler) PatchCurrentIndex(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchCurrentIndex"))

	quizID, ok := parseUUIDParam(w, r, logger, "quiz_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("quiz_id", quizID.String()))

	var req model.QuizIndexRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	quiz, err := h.service.SetCurrentIndex(r.Context(), quizID, *req.CurrentIndex)
	h.respondQuiz(w, logger, quiz, err, "index updated")
}

// PatchCorrectCount はクイズの正解数を更新するハンドラ
func (h *QuizHandler) PatchCorrectCount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchCorrectCount"))

	quizID, ok := parseUUIDParam(w, r, logger, "quiz_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("quiz_id", quizID.String()))

	var req model.QuizCorrectCountRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	quiz, err := h.service.SetCorrectCount(r.Context(), quizID, *req.CorrectCount)
	h.respondQuiz(w, logger, quiz, err, "correct count updated")
}

// PatchHintUsed はヒント使用フラグを更新するハンドラ
func (h *QuizHandler) PatchHintUsed(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchHintUsed"))

	quizID, ok := parseUUIDParam(w, r, logger, "quiz_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("quiz_id", quizID.String()))

	var req model.QuizHintRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	quiz, err := h.service.SetHintUsed(r.Context(), quizID, *req.HintUsed)
	h.respondQuiz(w, logger, quiz, err, "hint updated")
}

// DeleteQuiz はクイズを削除するハンドラ
func (h *QuizHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteQuiz"))

	quizID, ok := parseUUIDParam(w, r, logger, "quiz_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("quiz_id", quizID.String()))

	if _, err := h.service.DeleteQuiz(r.Context(), quizID); err != nil {
		logger.Error("Error deleting quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz deleted successfully")
	webutil.RespondEmpty(w)
}

// RenameQuiz はコース内のカテゴリ名をカード・クイズまとめて変更するハンドラ
func (h *QuizHandler) RenameQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RenameQuiz"))

	courseCode, ok := requireStringParam(w, r, logger, "course_code")
	if !ok {
		return
	}
	logger = logger.With(slog.String("course_code", courseCode))

	var req model.RenameQuizRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.RenameQuiz(r.Context(), courseCode, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Nothing to rename", slog.Any("error", err), slog.Any("request", req))
		} else {
			logger.Error("Error renaming quiz category in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz category renamed successfully",
		slog.Int64("cards_updated", result.CardsUpdated),
		slog.Int64("quizzes_updated", result.QuizzesUpdated),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
