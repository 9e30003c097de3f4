//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"

	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, course *model.Course) error
	FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	FindByCode(ctx context.Context, db *gorm.DB, courseCode string) (*model.Course, error)
	FindViews(ctx context.Context, db *gorm.DB) ([]*model.CourseView, error)
	FindViewByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.CourseView, error)
	FindViewByCode(ctx context.Context, db *gorm.DB, courseCode string) (*model.CourseView, error)
	FindCategories(ctx context.Context, db *gorm.DB, courseCode string) ([]string, error)
	Update(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) error
	CheckCodeExists(ctx context.Context, db *gorm.DB, courseCode string, excludeCourseID *uuid.UUID) (bool, error)
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Create(ctx context.Context, tx *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(course)
	if result.Error != nil {
		logger.Error("Error creating course in DB",
			"error", result.Error,
			"course_code", course.CourseCode,
		)
		return wrapError("gormCourseRepository.Create", result.Error)
	}
	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course
	result := db.WithContext(ctx).Where("id = ?", courseID).First(&course)
	if result.Error != nil {
		err := wrapError("gormCourseRepository.FindByID", result.Error)
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding course by ID in DB", "error", result.Error, "course_id", courseID.String())
		}
		return nil, err
	}
	return &course, nil
}

func (r *gormCourseRepository) FindByCode(ctx context.Context, db *gorm.DB, courseCode string) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course
	result := db.WithContext(ctx).Where("course_code = ?", courseCode).First(&course)
	if result.Error != nil {
		err := wrapError("gormCourseRepository.FindByCode", result.Error)
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding course by code in DB", "error", result.Error, "course_code", courseCode)
		}
		return nil, err
	}
	return &course, nil
}

func (r *gormCourseRepository) FindViews(ctx context.Context, db *gorm.DB) ([]*model.CourseView, error) {
	logger := middleware.GetLogger(ctx)
	views, err := findCourseViews(ctx, db, nil)
	if err != nil {
		logger.Error("Error finding course views in DB", "error", err)
		return nil, wrapError("gormCourseRepository.FindViews", err)
	}
	return views, nil
}

func (r *gormCourseRepository) FindViewByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.CourseView, error) {
	return r.findOneView(ctx, db, "gormCourseRepository.FindViewByID", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", courseID)
	})
}

func (r *gormCourseRepository) FindViewByCode(ctx context.Context, db *gorm.DB, courseCode string) (*model.CourseView, error) {
	return r.findOneView(ctx, db, "gormCourseRepository.FindViewByCode", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("course_code = ?", courseCode)
	})
}

func (r *gormCourseRepository) findOneView(ctx context.Context, db *gorm.DB, op string, scope scopeFunc) (*model.CourseView, error) {
	logger := middleware.GetLogger(ctx)
	views, err := findCourseViews(ctx, db, scope)
	if err != nil {
		logger.Error("Error finding course view in DB", "error", err, "op", op)
		return nil, wrapError(op, err)
	}
	if len(views) == 0 {
		return nil, model.ErrNotFound
	}
	return views[0], nil
}

func (r *gormCourseRepository) FindCategories(ctx context.Context, db *gorm.DB, courseCode string) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	categories := []string{}
	result := db.WithContext(ctx).Model(&model.Card{}).
		Where("course_code = ?", courseCode).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories)
	if result.Error != nil {
		logger.Error("Error finding categories in DB", "error", result.Error, "course_code", courseCode)
		return nil, wrapError("gormCourseRepository.FindCategories", result.Error)
	}
	return categories, nil
}

func (r *gormCourseRepository) Update(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Course{}).Where("id = ?", courseID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating course in DB",
			"error", result.Error,
			"course_id", courseID.String(),
		)
		return wrapError("gormCourseRepository.Update", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCourseRepository) Delete(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("id = ?", courseID).Delete(&model.Course{})
	if result.Error != nil {
		logger.Error("Error deleting course in DB",
			"error", result.Error,
			"course_id", courseID.String(),
		)
		return wrapError("gormCourseRepository.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCourseRepository) CheckCodeExists(ctx context.Context, db *gorm.DB, courseCode string, excludeCourseID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Course{}).Where("course_code = ?", courseCode)
	if excludeCourseID != nil {
		query = query.Where("id != ?", *excludeCourseID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking course code existence in DB",
			"error", result.Error,
			"course_code", courseCode,
		)
		return false, wrapError("gormCourseRepository.CheckCodeExists", result.Error)
	}
	return count > 0, nil
}
