// internal/model/card.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Card は問題と解答の組を表します (コースとカテゴリに属する)
type Card struct {
	ID         uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	Question   string                     `gorm:"not null" json:"question"`
	Answer     string                     `gorm:"not null" json:"answer"`
	CourseCode string                     `gorm:"not null;index:idx_cards_course_category" json:"course_code"`
	Category   string                     `gorm:"not null;index:idx_cards_course_category" json:"category"`
	Difficulty string                     `gorm:"not null;default:''" json:"difficulty"`
	Tags       datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt  time.Time                  `gorm:"not null" json:"created_at"`
	UpdatedAt  *time.Time                 `gorm:"autoCreateTime:false;autoUpdateTime:false" json:"updated_at"`
}

func (Card) TableName() string {
	return "cards"
}

// カード作成リクエストDTO
type CreateCardRequest struct {
	Question   string   `json:"question" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
	CourseCode string   `json:"course_code" validate:"required,max=32"`
	Category   string   `json:"category" validate:"required,max=100"`
	Difficulty string   `json:"difficulty,omitempty" validate:"omitempty,max=32"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,dive,max=64"`
}

// カード更新（全体）リクエストDTO
type UpdateCardRequest struct {
	ReadOnlyFields

	ID         uuid.UUID `json:"id" validate:"required"`
	Question   string    `json:"question" validate:"required"`
	Answer     string    `json:"answer" validate:"required"`
	CourseCode string    `json:"course_code" validate:"required,max=32"`
	Category   string    `json:"category" validate:"required,max=100"`
	Difficulty string    `json:"difficulty,omitempty" validate:"omitempty,max=32"`
	Tags       []string  `json:"tags,omitempty" validate:"omitempty,dive,max=64"`
}

// TagsResponse は GET /tags のレスポンス
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// NormalizeTags は前後の空白を除き、空のタグと重複を取り除きます (順序は保持)
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
