//go:generate mockery --name QuizRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"

	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(ctx context.Context, tx *gorm.DB, quiz *model.Quiz) error
	FindByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.Quiz, error)
	FindViews(ctx context.Context, db *gorm.DB) ([]*model.QuizView, error)
	FindViewByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.QuizView, error)
	FindViewsByCompletion(ctx context.Context, db *gorm.DB, isCompleted bool) ([]*model.QuizView, error)
	Update(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) error
	UpdateCourseCode(ctx context.Context, tx *gorm.DB, oldCode, newCode string) (int64, error)
	DeleteByCourseCode(ctx context.Context, tx *gorm.DB, courseCode string) (int64, error)
	RenameCategory(ctx context.Context, tx *gorm.DB, courseCode, oldCategory, newCategory string) (int64, error)
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func (r *gormQuizRepository) Create(ctx context.Context, tx *gorm.DB, quiz *model.Quiz) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(quiz)
	if result.Error != nil {
		logger.Error("Error creating quiz in DB",
			"error", result.Error,
			"course_code", quiz.CourseCode,
			"category", quiz.Category,
		)
		return wrapError("gormQuizRepository.Create", result.Error)
	}
	return nil
}

func (r *gormQuizRepository) FindByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.Quiz, error) {
	logger := middleware.GetLogger(ctx)
	var quiz model.Quiz
	result := db.WithContext(ctx).Where("id = ?", quizID).First(&quiz)
	if result.Error != nil {
		err := wrapError("gormQuizRepository.FindByID", result.Error)
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding quiz by ID in DB", "error", result.Error, "quiz_id", quizID.String())
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *gormQuizRepository) FindViews(ctx context.Context, db *gorm.DB) ([]*model.QuizView, error) {
	return r.findViews(ctx, db, "gormQuizRepository.FindViews", nil)
}

func (r *gormQuizRepository) FindViewByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.QuizView, error) {
	views, err := r.findViews(ctx, db, "gormQuizRepository.FindViewByID", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("quizzes.id = ?", quizID)
	})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, model.ErrNotFound
	}
	return views[0], nil
}

func (r *gormQuizRepository) FindViewsByCompletion(ctx context.Context, db *gorm.DB, isCompleted bool) ([]*model.QuizView, error) {
	return r.findViews(ctx, db, "gormQuizRepository.FindViewsByCompletion", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("quizzes.is_completed = ?", isCompleted)
	})
}

func (r *gormQuizRepository) findViews(ctx context.Context, db *gorm.DB, op string, scope scopeFunc) ([]*model.QuizView, error) {
	logger := middleware.GetLogger(ctx)
	views, err := findQuizViews(ctx, db, scope)
	if err != nil {
		logger.Error("Error finding quiz views in DB", "error", err, "op", op)
		return nil, wrapError(op, err)
	}
	if views == nil {
		views = []*model.QuizView{}
	}
	return views, nil
}

func (r *gormQuizRepository) Update(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Quiz{}).Where("id = ?", quizID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating quiz in DB",
			"error", result.Error,
			"quiz_id", quizID.String(),
		)
		return wrapError("gormQuizRepository.Update", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormQuizRepository) Delete(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("id = ?", quizID).Delete(&model.Quiz{})
	if result.Error != nil {
		logger.Error("Error deleting quiz in DB",
			"error", result.Error,
			"quiz_id", quizID.String(),
		)
		return wrapError("gormQuizRepository.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormQuizRepository) UpdateCourseCode(ctx context.Context, tx *gorm.DB, oldCode, newCode string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Quiz{}).
		Where("course_code = ?", oldCode).
		Update("course_code", newCode)
	if result.Error != nil {
		logger.Error("Error updating quiz course codes in DB",
			"error", result.Error,
			"old_course_code", oldCode,
			"new_course_code", newCode,
		)
		return 0, wrapError("gormQuizRepository.UpdateCourseCode", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormQuizRepository) DeleteByCourseCode(ctx context.Context, tx *gorm.DB, courseCode string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("course_code = ?", courseCode).Delete(&model.Quiz{})
	if result.Error != nil {
		logger.Error("Error deleting quizzes by course code in DB",
			"error", result.Error,
			"course_code", courseCode,
		)
		return 0, wrapError("gormQuizRepository.DeleteByCourseCode", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormQuizRepository) RenameCategory(ctx context.Context, tx *gorm.DB, courseCode, oldCategory, newCategory string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Quiz{}).
		Where("course_code = ? AND category = ?", courseCode, oldCategory).
		Update("category", newCategory)
	if result.Error != nil {
		logger.Error("Error renaming quiz category in DB",
			"error", result.Error,
			"course_code", courseCode,
			"old_category", oldCategory,
			"new_category", newCategory,
		)
		return 0, wrapError("gormQuizRepository.RenameCategory", result.Error)
	}
	return result.RowsAffected, nil
}
