package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizProgress(t *testing.T) {
	tests := []struct {
		name         string
		currentIndex int
		cardCount    int64
		isCompleted  bool
		want         int
	}{
		{name: "未開始", currentIndex: 0, cardCount: 10, want: 0},
		{name: "途中", currentIndex: 5, cardCount: 10, want: 50},
		{name: "切り捨て", currentIndex: 1, cardCount: 3, want: 33},
		{name: "最後まで到達", currentIndex: 10, cardCount: 10, want: 100},
		{name: "完了済みは常に100", currentIndex: 0, cardCount: 10, isCompleted: true, want: 100},
		{name: "カード0件", currentIndex: 0, cardCount: 0, want: 0},
		{name: "カードが減って範囲外になっても100で頭打ち", currentIndex: 8, cardCount: 4, want: 100},
		{name: "負の位置は0", currentIndex: -1, cardCount: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuizProgress(tt.currentIndex, tt.cardCount, tt.isCompleted))
		})
	}
}

func TestCourseProgress(t *testing.T) {
	quiz := func(category string, progress int) QuizView {
		return QuizView{Quiz: Quiz{Category: category}, Progress: progress}
	}

	tests := []struct {
		name       string
		categories []string
		quizzes    []QuizView
		want       int
	}{
		{name: "カテゴリなし", categories: nil, quizzes: []QuizView{quiz("a", 100)}, want: 0},
		{name: "クイズなし", categories: []string{"a", "b"}, want: 0},
		{name: "全カテゴリ完了", categories: []string{"a", "b"}, quizzes: []QuizView{quiz("a", 100), quiz("b", 100)}, want: 100},
		{name: "クイズのないカテゴリは0として平均", categories: []string{"a", "b"}, quizzes: []QuizView{quiz("a", 100)}, want: 50},
		{name: "同じカテゴリは最高値を採用", categories: []string{"a"}, quizzes: []QuizView{quiz("a", 20), quiz("a", 70), quiz("a", 40)}, want: 70},
		{name: "カテゴリ外のクイズは無視", categories: []string{"a"}, quizzes: []QuizView{quiz("z", 100)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CourseProgress(tt.categories, tt.quizzes)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, ProgressMin)
			assert.LessOrEqual(t, got, ProgressMax)
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"go", "db", "sql"}, NormalizeTags([]string{" go", "db", "", "go ", "sql", "  "}))
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestAppError(t *testing.T) {
	err := NewAppError("VALIDATION_ERROR", "問題は必須項目です。", "question", ErrInvalidInput)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "question", err.Detail.Field)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), ErrInvalidInput.Error())
}
