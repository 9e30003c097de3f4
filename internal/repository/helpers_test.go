package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB はテストごとに独立したインメモリSQLiteを用意し、マイグレーションまで行います
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func testContext() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func insertCourse(t *testing.T, db *gorm.DB, code string) *model.Course {
	t.Helper()
	course := &model.Course{ID: uuid.New(), Name: "Course " + code, CourseCode: code, Description: "desc"}
	require.NoError(t, db.Create(course).Error)
	return course
}

func insertCard(t *testing.T, db *gorm.DB, code, category string, tags ...string) *model.Card {
	t.Helper()
	card := &model.Card{
		ID:         uuid.New(),
		Question:   "Q " + uuid.NewString()[:8],
		Answer:     "A",
		CourseCode: code,
		Category:   category,
		Tags:       datatypes.JSONSlice[string](tags),
	}
	require.NoError(t, db.Create(card).Error)
	return card
}

func insertQuiz(t *testing.T, db *gorm.DB, code, category string, currentIndex int, completed bool) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{
		ID:           uuid.New(),
		CourseCode:   code,
		Category:     category,
		CurrentIndex: currentIndex,
		IsCompleted:  completed,
		StartedAt:    time.Now(),
	}
	if completed {
		now := time.Now()
		quiz.CompletedAt = &now
	}
	require.NoError(t, db.Create(quiz).Error)
	return quiz
}
