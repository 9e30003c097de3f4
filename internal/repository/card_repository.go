//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"

	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Card) error
	FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Card, error)
	FindByCourseCode(ctx context.Context, db *gorm.DB, courseCode string) ([]*model.Card, error)
	FindByCourseCategory(ctx context.Context, db *gorm.DB, courseCode, category string) ([]*model.Card, error)
	FindAllTags(ctx context.Context, db *gorm.DB) ([][]string, error)
	Update(ctx context.Context, tx *gorm.DB, cardID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) error
	// 以下はコース・カテゴリ単位の一括操作 (0件でもエラーにしない)
	UpdateCourseCode(ctx context.Context, tx *gorm.DB, oldCode, newCode string) (int64, error)
	DeleteByCourseCode(ctx context.Context, tx *gorm.DB, courseCode string) (int64, error)
	RenameCategory(ctx context.Context, tx *gorm.DB, courseCode, oldCategory, newCategory string) (int64, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"course_code", card.CourseCode,
			"category", card.Category,
		)
		return wrapError("gormCardRepository.Create", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).Where("id = ?", cardID).First(&card)
	if result.Error != nil {
		err := wrapError("gormCardRepository.FindByID", result.Error)
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding card by ID in DB", "error", result.Error, "card_id", cardID.String())
		}
		return nil, err
	}
	return &card, nil
}

func (r *gormCardRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Card, error) {
	return r.find(ctx, db, "gormCardRepository.FindAll", nil)
}

func (r *gormCardRepository) FindByCourseCode(ctx context.Context, db *gorm.DB, courseCode string) ([]*model.Card, error) {
	return r.find(ctx, db, "gormCardRepository.FindByCourseCode", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("course_code = ?", courseCode)
	})
}

func (r *gormCardRepository) FindByCourseCategory(ctx context.Context, db *gorm.DB, courseCode, category string) ([]*model.Card, error) {
	return r.find(ctx, db, "gormCardRepository.FindByCourseCategory", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("course_code = ? AND category = ?", courseCode, category)
	})
}

func (r *gormCardRepository) find(ctx context.Context, db *gorm.DB, op string, scope scopeFunc) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	cards := []*model.Card{}
	query := db.WithContext(ctx).Model(&model.Card{})
	if scope != nil {
		query = query.Scopes(scope)
	}
	result := query.Order("created_at ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding cards in DB", "error", result.Error, "op", op)
		return nil, wrapError(op, result.Error)
	}
	return cards, nil
}

// FindAllTags はカードごとのタグ一覧をそのまま返します (重複除去は呼び出し側)
func (r *gormCardRepository) FindAllTags(ctx context.Context, db *gorm.DB) ([][]string, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	result := db.WithContext(ctx).Select("tags").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding card tags in DB", "error", result.Error)
		return nil, wrapError("gormCardRepository.FindAllTags", result.Error)
	}
	tags := make([][]string, 0, len(cards))
	for _, c := range cards {
		tags = append(tags, c.Tags)
	}
	return tags, nil
}

func (r *gormCardRepository) Update(ctx context.Context, tx *gorm.DB, cardID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Card{}).Where("id = ?", cardID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating card in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return wrapError("gormCardRepository.Update", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) Delete(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("id = ?", cardID).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting card in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return wrapError("gormCardRepository.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) UpdateCourseCode(ctx context.Context, tx *gorm.DB, oldCode, newCode string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Card{}).
		Where("course_code = ?", oldCode).
		Update("course_code", newCode)
	if result.Error != nil {
		logger.Error("Error updating card course codes in DB",
			"error", result.Error,
			"old_course_code", oldCode,
			"new_course_code", newCode,
		)
		return 0, wrapError("gormCardRepository.UpdateCourseCode", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormCardRepository) DeleteByCourseCode(ctx context.Context, tx *gorm.DB, courseCode string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("course_code = ?", courseCode).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting cards by course code in DB",
			"error", result.Error,
			"course_code", courseCode,
		)
		return 0, wrapError("gormCardRepository.DeleteByCourseCode", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormCardRepository) RenameCategory(ctx context.Context, tx *gorm.DB, courseCode, oldCategory, newCategory string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Card{}).
		Where("course_code = ? AND category = ?", courseCode, oldCategory).
		Update("category", newCategory)
	if result.Error != nil {
		logger.Error("Error renaming card category in DB",
			"error", result.Error,
			"course_code", courseCode,
			"old_category", oldCategory,
			"new_category", newCategory,
		)
		return 0, wrapError("gormCardRepository.RenameCategory", result.Error)
	}
	return result.RowsAffected, nil
}
