// internal/model/quiz.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Quiz はコース+カテゴリのカードを順番に解いていく1回分の挑戦を表します
type Quiz struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CourseCode   string     `gorm:"not null;index:idx_quizzes_course_category" json:"course_code"`
	Category     string     `gorm:"not null;index:idx_quizzes_course_category" json:"category"`
	CurrentIndex int        `gorm:"not null;default:0" json:"current_index"`
	CorrectCount int        `gorm:"not null;default:0" json:"correct_count"`
	IsCompleted  bool       `gorm:"not null;default:false;index" json:"is_completed"`
	HintUsed     bool       `gorm:"not null;default:false" json:"hint_used"`
	StartedAt    time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"` // 完了時のみセット
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizView はクイズに対象カード数と進捗率を付け足した投影
type QuizView struct {
	Quiz
	CardCount int64 `json:"card_count"`
	Progress  int   `json:"progress"` // 0〜100
}

// クイズ作成リクエストDTO
type CreateQuizRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=32"`
	Category   string `json:"category" validate:"required,max=100"`
}

// クイズ更新（全体）リクエストDTO
type UpdateQuizRequest struct {
	ReadOnlyFields

	ID           uuid.UUID `json:"id" validate:"required"`
	CurrentIndex int       `json:"current_index" validate:"min=0"`
	CorrectCount int       `json:"correct_count" validate:"min=0"`
	IsCompleted  bool      `json:"is_completed"`
}

// QuizCompletionRequest は PATCH /quiz のリクエストボディ
type QuizCompletionRequest struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	IsCompleted *bool     `json:"is_completed" validate:"required"`
}

type QuizIndexRequest struct {
	CurrentIndex *int `json:"current_index" validate:"required"`
}

type QuizCorrectCountRequest struct {
	CorrectCount *int `json:"correct_count" validate:"required"`
}

type QuizHintRequest struct {
	HintUsed *bool `json:"hint_used" validate:"required"`
}

// RenameQuizRequest はカテゴリ名の一括変更リクエスト
type RenameQuizRequest struct {
	Old string `json:"old" validate:"required,max=100"`
	New string `json:"new" validate:"required,max=100"`
}

// RenameQuizResult は一括変更の結果 (更新件数)
type RenameQuizResult struct {
	CourseCode     string `json:"course_code"`
	Category       string `json:"category"`
	CardsUpdated   int64  `json:"cards_updated"`
	QuizzesUpdated int64  `json:"quizzes_updated"`
}
