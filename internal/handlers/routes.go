// internal/handlers/routes.go
package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Handlers はルーティングに必要なハンドラ一式
type Handlers struct {
	Course *CourseHandler
	Card   *CardHandler
	Quiz   *QuizHandler
	Health *HealthHandler
}

// RegisterRoutes は /v1 配下のAPIと /health を r に登録します。
// フロントエンドが使う /id/{...} 形式のパスも同じハンドラに向けます。
func RegisterRoutes(r chi.Router, h Handlers) {
	r.Get("/health", h.Health.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.Course.GetCourses)
			r.Post("/", h.Course.PostCourse)
			r.Put("/", h.Course.PutCourse)
			r.Get("/code/{course_code}", h.Course.GetCourseByCode)
			for _, prefix := range []string{"", "/id"} {
				r.Get(prefix+"/{course_id}", h.Course.GetCourse)
				r.Get(prefix+"/{course_id}/categories", h.Course.GetCategories)
				r.Delete(prefix+"/{course_id}", h.Course.DeleteCourse)
			}
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", h.Card.GetCards)
			r.Post("/", h.Card.PostCard)
			r.Put("/", h.Card.PutCard)
			r.Get("/course/{course_code}", h.Card.GetCardsByCourseCode)
			r.Get("/quiz/{quiz_id}", h.Card.GetCardsByQuizID)
			for _, prefix := range []string{"", "/id"} {
				r.Get(prefix+"/{card_id}", h.Card.GetCard)
				r.Delete(prefix+"/{card_id}", h.Card.DeleteCard)
			}
		})

		r.Get("/tags", h.Card.GetTags)

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/", h.Quiz.GetQuizzes)
			r.Post("/", h.Quiz.PostQuiz)
			r.Put("/", h.Quiz.PutQuiz)
			r.Patch("/", h.Quiz.PatchQuizCompletion)
			r.Get("/ongoing", h.Quiz.GetOngoingQuizzes)
			r.Get("/completed", h.Quiz.GetCompletedQuizzes)
			r.Get("/id/{quiz_id}", h.Quiz.GetQuiz)
			r.Delete("/id/{quiz_id}", h.Quiz.DeleteQuiz)
			r.Patch("/id/{quiz_id}/index", h.Quiz.PatchCurrentIndex)
			r.Patch("/id/{quiz_id}/correct", h.Quiz.PatchCorrectCount)
			r.Patch("/id/{quiz_id}/hint", h.Quiz.PatchHintUsed)
			r.Post("/rename/{course_code}", h.Quiz.RenameQuiz)
		})
	})
}
