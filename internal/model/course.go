// internal/model/course.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Course はコースコードで識別される科目を表します
type Course struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	CourseCode  string     `gorm:"not null;uniqueIndex" json:"course_code"`
	Description string     `gorm:"not null;default:''" json:"description"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoCreateTime:false;autoUpdateTime:false" json:"updated_at"` // 作成時はNULL、更新のたびにService層でセット
}

func (Course) TableName() string {
	return "courses"
}

// CourseView はコースに集計値を付け足した読み取り専用の投影
type CourseView struct {
	Course
	Questions  int64    `json:"questions"`  // 紐づくカード数
	Progress   int      `json:"progress"`   // 0〜100
	Categories []string `json:"categories"` // カードのカテゴリ (重複なし・昇順)
}

// コース作成リクエストDTO
type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	CourseCode  string `json:"course_code" validate:"required,max=32"`
	Description string `json:"description" validate:"max=2000"`
}

// コース更新（全体）リクエストDTO
type UpdateCourseRequest struct {
	ReadOnlyFields

	ID          uuid.UUID `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=200"`
	CourseCode  string    `json:"course_code" validate:"required,max=32"`
	Description string    `json:"description" validate:"max=2000"`
}
