//go:generate mockery --name CourseService --output ./mocks --outpkg mocks --case=underscore
// internal/service/course_service.go
package service

import (
	"context"
	"time"

	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseService interface {
	ListCourses(ctx context.Context) ([]*model.CourseView, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*model.CourseView, error)
	GetCourseByCode(ctx context.Context, courseCode string) (*model.CourseView, error)
	GetCategories(ctx context.Context, courseID uuid.UUID) ([]string, error)
	CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error)
	UpdateCourse(ctx context.Context, req *model.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) (uuid.UUID, error)
}

type courseService struct {
	db         *gorm.DB // トランザクション用にDB接続を持つ
	courseRepo repository.CourseRepository
	cardRepo   repository.CardRepository
	quizRepo   repository.QuizRepository
}

func NewCourseService(db *gorm.DB, courseRepo repository.CourseRepository, cardRepo repository.CardRepository, quizRepo repository.QuizRepository) CourseService {
	return &courseService{
		db:         db,
		courseRepo: courseRepo,
		cardRepo:   cardRepo,
		quizRepo:   quizRepo,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]*model.CourseView, error) {
	views, err := s.courseRepo.FindViews(ctx, s.db)
	if err != nil {
		return nil, normalizeError(ctx, "courseService.ListCourses", err)
	}
	return views, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*model.CourseView, error) {
	view, err := s.courseRepo.FindViewByID(ctx, s.db, courseID)
	if err != nil {
		return nil, normalizeError(ctx, "courseService.GetCourse", err)
	}
	return view, nil
}

func (s *courseService) GetCourseByCode(ctx context.Context, courseCode string) (*model.CourseView, error) {
	view, err := s.courseRepo.FindViewByCode(ctx, s.db, courseCode)
	if err != nil {
		return nil, normalizeError(ctx, "courseService.GetCourseByCode", err)
	}
	return view, nil
}

func (s *courseService) GetCategories(ctx context.Context, courseID uuid.UUID) ([]string, error) {
	course, err := s.courseRepo.FindByID(ctx, s.db, courseID)
	if err != nil {
		return nil, normalizeError(ctx, "courseService.GetCategories", err)
	}
	categories, err := s.courseRepo.FindCategories(ctx, s.db, course.CourseCode)
	if err != nil {
		return nil, normalizeError(ctx, "courseService.GetCategories", err)
	}
	return categories, nil
}

func validateCourseFields(name, courseCode string) error {
	if err := requireText("name", "コース名", name); err != nil {
		return err
	}
	return requireText("course_code", "コースコード", courseCode)
}

func (s *courseService) CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	if err := validateCourseFields(req.Name, req.CourseCode); err != nil {
		return nil, err
	}

	var created *model.Course
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 重複チェック (一意制約違反もリポジトリで ErrConflict に変換される)
		exists, err := s.courseRepo.CheckCodeExists(ctx, tx, req.CourseCode, nil)
		if err != nil {
			return err
		}
		if exists {
			return model.ErrConflict
		}

		// 2. 作成 (updated_at は NULL のまま)
		course := &model.Course{
			ID:          uuid.New(),
			Name:        req.Name,
			CourseCode:  req.CourseCode,
			Description: req.Description,
		}
		if err := s.courseRepo.Create(ctx, tx, course); err != nil {
			return err
		}
		created = course
		return nil
	})
	if err != nil {
		return nil, normalizeError(ctx, "courseService.CreateCourse", err)
	}

	middleware.GetLogger(ctx).Info("Course created", "course_id", created.ID.String(), "course_code", created.CourseCode)
	return created, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, req *model.UpdateCourseRequest) (*model.Course, error) {
	if err := validateCourseFields(req.Name, req.CourseCode); err != nil {
		return nil, err
	}

	var updated *model.Course
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		current, err := s.courseRepo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}

		// 2. コースコードが変わる場合は重複チェックとカード・クイズへの反映
		if req.CourseCode != current.CourseCode {
			exists, err := s.courseRepo.CheckCodeExists(ctx, tx, req.CourseCode, &req.ID)
			if err != nil {
				return err
			}
			if exists {
				return model.ErrConflict
			}
			if _, err := s.cardRepo.UpdateCourseCode(ctx, tx, current.CourseCode, req.CourseCode); err != nil {
				return err
			}
			if _, err := s.quizRepo.UpdateCourseCode(ctx, tx, current.CourseCode, req.CourseCode); err != nil {
				return err
			}
		}

		// 3. 全体更新
		updates := map[string]interface{}{
			"name":        req.Name,
			"course_code": req.CourseCode,
			"description": req.Description,
			"updated_at":  time.Now(),
		}
		if err := s.courseRepo.Update(ctx, tx, req.ID, updates); err != nil {
			return err
		}

		updated, err = s.courseRepo.FindByID(ctx, tx, req.ID)
		return err
	})
	if err != nil {
		return nil, normalizeError(ctx, "courseService.UpdateCourse", err)
	}
	return updated, nil
}

// DeleteCourse はコースと、そのコースコードに属するカード・クイズをまとめて削除します
func (s *courseService) DeleteCourse(ctx context.Context, courseID uuid.UUID) (uuid.UUID, error) {
	var cardsDeleted, quizzesDeleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.courseRepo.FindByID(ctx, tx, courseID)
		if err != nil {
			return err
		}
		if cardsDeleted, err = s.cardRepo.DeleteByCourseCode(ctx, tx, course.CourseCode); err != nil {
			return err
		}
		if quizzesDeleted, err = s.quizRepo.DeleteByCourseCode(ctx, tx, course.CourseCode); err != nil {
			return err
		}
		return s.courseRepo.Delete(ctx, tx, courseID)
	})
	if err != nil {
		return uuid.Nil, normalizeError(ctx, "courseService.DeleteCourse", err)
	}

	middleware.GetLogger(ctx).Info("Course deleted",
		"course_id", courseID.String(),
		"cards_deleted", cardsDeleted,
		"quizzes_deleted", quizzesDeleted,
	)
	return courseID, nil
}
