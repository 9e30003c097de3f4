package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを返します (マイグレーション済み)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// トランザクション中に別コネクションが割り込まないよう1本に絞る
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

func testContext() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testServices は実リポジトリで組み立てたサービス一式
type testServices struct {
	db     *gorm.DB
	course CourseService
	card   CardService
	quiz   QuizService
}

func newTestServices(t *testing.T, opts QuizOptions) *testServices {
	t.Helper()
	db := setupTestDB(t)
	courseRepo := repository.NewGormCourseRepository()
	cardRepo := repository.NewGormCardRepository()
	quizRepo := repository.NewGormQuizRepository()
	return &testServices{
		db:     db,
		course: NewCourseService(db, courseRepo, cardRepo, quizRepo),
		card:   NewCardService(db, cardRepo, courseRepo, quizRepo),
		quiz:   NewQuizService(db, quizRepo, cardRepo, courseRepo, opts),
	}
}

func (s *testServices) mustCourse(t *testing.T, code string) *model.Course {
	t.Helper()
	course, err := s.course.CreateCourse(testContext(), &model.CreateCourseRequest{
		Name:        "Course " + code,
		CourseCode:  code,
		Description: "desc",
	})
	require.NoError(t, err)
	return course
}

func (s *testServices) mustCard(t *testing.T, code, category string, tags ...string) *model.Card {
	t.Helper()
	card, err := s.card.CreateCard(testContext(), &model.CreateCardRequest{
		Question:   "Q " + uuid.NewString()[:8],
		Answer:     "A",
		CourseCode: code,
		Category:   category,
		Tags:       tags,
	})
	require.NoError(t, err)
	return card
}

func (s *testServices) mustCards(t *testing.T, code, category string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		s.mustCard(t, code, category)
	}
}
