//go:build integration

// Docker 上の PostgreSQL に対してリポジトリを検証します。
// 実行: go test -tags integration ./internal/repository/...
package repository

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go_keiko_flashcards/internal/config"
	"go_keiko_flashcards/internal/model"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PostgresRepositorySuite struct {
	suite.Suite

	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

func TestPostgresRepository(t *testing.T) {
	suite.Run(t, new(PostgresRepositorySuite))
}

// SetupSuite はコンテナを1つ起動し、接続とマイグレーションまで行います
func (s *PostgresRepositorySuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	pool, err := dockertest.NewPool("")
	s.Require().NoError(err, "Could not construct pool")
	pool.MaxWait = 120 * time.Second
	s.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=keiko",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	s.Require().NoError(err, "Could not start PostgreSQL resource")
	s.resource = resource
	s.Require().NoError(resource.Expire(180))

	url := fmt.Sprintf("postgres://user:secret@%s/keiko?sslmode=disable", resource.GetHostPort("5432/tcp"))
	err = pool.Retry(func() error {
		var errRetry error
		s.db, errRetry = NewDB(DBOptions{Driver: config.DriverPostgres, URL: url, MaxOpenConns: 5}, logger)
		return errRetry
	})
	s.Require().NoError(err, "Could not connect to PostgreSQL")
	s.Require().NoError(Migrate(s.db))
}

func (s *PostgresRepositorySuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if s.resource != nil {
		if err := s.pool.Purge(s.resource); err != nil {
			s.T().Logf("Could not purge resource: %s", err)
		}
	}
}

// SetupTest は各テストの前に全テーブルを空にします
func (s *PostgresRepositorySuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE quizzes, cards, courses").Error)
}

func (s *PostgresRepositorySuite) TestCourseConflict() {
	ctx := testContext()
	repo := NewGormCourseRepository()
	insertCourse(s.T(), s.db, "CS121")

	err := repo.Create(ctx, s.db, &model.Course{ID: uuid.New(), Name: "dup", CourseCode: "CS121"})
	s.ErrorIs(err, model.ErrConflict, "unique violation maps to ErrConflict")

	exists, err := repo.CheckCodeExists(ctx, s.db, "CS121", nil)
	s.NoError(err)
	s.True(exists)
}

func (s *PostgresRepositorySuite) TestViews() {
	ctx := testContext()
	courseRepo := NewGormCourseRepository()
	quizRepo := NewGormQuizRepository()

	insertCourse(s.T(), s.db, "CS121")
	for i := 0; i < 4; i++ {
		insertCard(s.T(), s.db, "CS121", "sorting", "algo")
	}
	insertCard(s.T(), s.db, "CS121", "graphs", "algo", "bfs")
	quiz := insertQuiz(s.T(), s.db, "CS121", "sorting", 2, false)

	view, err := quizRepo.FindViewByID(ctx, s.db, quiz.ID)
	s.Require().NoError(err)
	s.Equal(int64(4), view.CardCount)
	s.Equal(50, view.Progress)

	course, err := courseRepo.FindViewByCode(ctx, s.db, "CS121")
	s.Require().NoError(err)
	s.Equal(int64(5), course.Questions)
	s.Equal([]string{"graphs", "sorting"}, course.Categories)
	s.Equal(25, course.Progress)
}

func (s *PostgresRepositorySuite) TestTagsAndRename() {
	ctx := testContext()
	cardRepo := NewGormCardRepository()
	quizRepo := NewGormQuizRepository()

	insertCourse(s.T(), s.db, "CS121")
	insertCard(s.T(), s.db, "CS121", "old", "a", "b")
	insertCard(s.T(), s.db, "CS121", "old", "b", "c")
	insertQuiz(s.T(), s.db, "CS121", "old", 0, false)

	tags, err := cardRepo.FindAllTags(ctx, s.db)
	s.Require().NoError(err)
	s.ElementsMatch([][]string{{"a", "b"}, {"b", "c"}}, tags)

	var cardsUpdated, quizzesUpdated int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if cardsUpdated, err = cardRepo.RenameCategory(ctx, tx, "CS121", "old", "new"); err != nil {
			return err
		}
		quizzesUpdated, err = quizRepo.RenameCategory(ctx, tx, "CS121", "old", "new")
		return err
	})
	s.Require().NoError(err)
	s.Equal(int64(2), cardsUpdated)
	s.Equal(int64(1), quizzesUpdated)

	cards, err := cardRepo.FindByCourseCategory(ctx, s.db, "CS121", "new")
	s.Require().NoError(err)
	s.Len(cards, 2)
}

type renameSnapshot struct {
	Cards   int64
	Quizzes int64
}

// 変更中に並行して読んでも、カードとクイズのカテゴリが食い違う状態は見えないこと
func (s *PostgresRepositorySuite) TestRenameIsAtomicForConcurrentReaders() {
	ctx := testContext()
	cardRepo := NewGormCardRepository()
	quizRepo := NewGormQuizRepository()

	const cardCount, quizCount = 3, 2
	insertCourse(s.T(), s.db, "CS121")
	for i := 0; i < cardCount; i++ {
		insertCard(s.T(), s.db, "CS121", "old")
	}
	for i := 0; i < quizCount; i++ {
		insertQuiz(s.T(), s.db, "CS121", "old", 0, false)
	}

	rename := func(from, to string) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if _, err := cardRepo.RenameCategory(ctx, tx, "CS121", from, to); err != nil {
				return err
			}
			_, err := quizRepo.RenameCategory(ctx, tx, "CS121", from, to)
			return err
		})
	}

	var (
		done       atomic.Bool
		reads      atomic.Int64
		mismatches atomic.Int64
		readErrs   atomic.Int64
		wg         sync.WaitGroup
	)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !done.Load() {
				// 1文で読むので両テーブルは同じスナップショットになる
				var snap renameSnapshot
				err := s.db.WithContext(ctx).Raw(`SELECT
					(SELECT COUNT(*) FROM cards WHERE course_code = ? AND category = ?) AS cards,
					(SELECT COUNT(*) FROM quizzes WHERE course_code = ? AND category = ?) AS quizzes`,
					"CS121", "new", "CS121", "new").Scan(&snap).Error
				if err != nil {
					readErrs.Add(1)
					continue
				}
				reads.Add(1)
				before := snap.Cards == 0 && snap.Quizzes == 0
				after := snap.Cards == cardCount && snap.Quizzes == quizCount
				if !before && !after {
					mismatches.Add(1)
				}
			}
		}()
	}

	deadline := time.Now().Add(10 * time.Second)
	for reads.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	for i := 0; i < 20; i++ {
		from, to := "old", "new"
		if i%2 == 1 {
			from, to = "new", "old"
		}
		s.Require().NoError(rename(from, to))
	}
	done.Store(true)
	wg.Wait()

	s.Positive(reads.Load(), "readers should overlap the renames")
	s.Zero(readErrs.Load())
	s.Zero(mismatches.Load(), "a reader observed cards and quizzes in different categories")
}
