// internal/handlers/course_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/service"
	"go_keiko_flashcards/internal/webutil"
)

type CourseHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(s service.CourseService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		service: s,
		logger:  logger,
	}
}

// GetCourses はコース一覧 (集計値付き) を返すハンドラ
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourses"))

	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		logger.Error("Error listing courses in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if courses == nil {
		courses = []*model.CourseView{}
	}
	logger.Info("Courses listed successfully", slog.Int("count", len(courses)))
	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}

// GetCourse は特定のコースを返すハンドラ
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourse"))

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("course_id", courseID.String()))

	course, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Course not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting course from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, course, logger)
}

// GetCourseByCode はコースコードでコースを返すハンドラ
func (h *CourseHandler) GetCourseByCode(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourseByCode"))

	courseCode, ok := requireStringParam(w, r, logger, "course_code")
	if !ok {
		return
	}
	logger = logger.With(slog.String("course_code", courseCode))

	course, err := h.service.GetCourseByCode(r.Context(), courseCode)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Course not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting course by code from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, course, logger)
}

// GetCategories はコースのカードに使われているカテゴリ一覧を返すハンドラ
func (h *CourseHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCategories"))

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("course_id", courseID.String()))

	categories, err := h.service.GetCategories(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Course not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting categories from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if categories == nil {
		categories = []string{}
	}
	logger.Info("Categories retrieved successfully", slog.Int("count", len(categories)))
	webutil.RespondWithJSON(w, http.StatusOK, categories, logger)
}

// PostCourse は新しいコースを作成するハンドラ
func (h *CourseHandler) PostCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCourse"))

	var req model.CreateCourseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	course, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating course in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course created successfully", slog.String("course_id", course.ID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, course, logger)
}

// PutCourse はコースを全体更新するハンドラ (IDはボディで指定)
func (h *CourseHandler) PutCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutCourse"))

	var req model.UpdateCourseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	logger = logger.With(slog.String("course_id", req.ID.String()))

	course, err := h.service.UpdateCourse(r.Context(), &req)
	if err != nil {
		logger.Error("Error updating course in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, course, logger)
}

// DeleteCourse はコースを削除するハンドラ
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCourse"))

	courseID, ok := parseUUIDParam(w, r, logger, "course_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("course_id", courseID.String()))

	if _, err := h.service.DeleteCourse(r.Context(), courseID); err != nil {
		logger.Error("Error deleting course in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course deleted successfully")
	webutil.RespondEmpty(w)
}
