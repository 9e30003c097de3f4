//go:generate mockery --name CardService --output ./mocks --outpkg mocks --case=underscore
// internal/service/card_service.go
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errCourseNotFound = model.NewAppError(
	"COURSE_NOT_FOUND",
	"指定されたコースコードのコースが存在しません。",
	"course_code",
	model.ErrInvalidInput,
)

type CardService interface {
	ListCards(ctx context.Context) ([]*model.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*model.Card, error)
	ListCardsByCourseCode(ctx context.Context, courseCode string) ([]*model.Card, error)
	ListCardsByQuizID(ctx context.Context, quizID uuid.UUID) ([]*model.Card, error)
	CreateCard(ctx context.Context, req *model.CreateCardRequest) (*model.Card, error)
	UpdateCard(ctx context.Context, req *model.UpdateCardRequest) (*model.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) (uuid.UUID, error)
	GetAvailableTags(ctx context.Context) ([]string, error)
}

type cardService struct {
	db         *gorm.DB
	cardRepo   repository.CardRepository
	courseRepo repository.CourseRepository
	quizRepo   repository.QuizRepository
}

func NewCardService(db *gorm.DB, cardRepo repository.CardRepository, courseRepo repository.CourseRepository, quizRepo repository.QuizRepository) CardService {
	return &cardService{
		db:         db,
		cardRepo:   cardRepo,
		courseRepo: courseRepo,
		quizRepo:   quizRepo,
	}
}

func (s *cardService) ListCards(ctx context.Context) ([]*model.Card, error) {
	cards, err := s.cardRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, normalizeError(ctx, "cardService.ListCards", err)
	}
	return cards, nil
}

func (s *cardService) GetCard(ctx context.Context, cardID uuid.UUID) (*model.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, s.db, cardID)
	if err != nil {
		return nil, normalizeError(ctx, "cardService.GetCard", err)
	}
	return card, nil
}

func (s *cardService) ListCardsByCourseCode(ctx context.Context, courseCode string) ([]*model.Card, error) {
	if _, err := s.courseRepo.FindByCode(ctx, s.db, courseCode); err != nil {
		return nil, normalizeError(ctx, "cardService.ListCardsByCourseCode", err)
	}
	cards, err := s.cardRepo.FindByCourseCode(ctx, s.db, courseCode)
	if err != nil {
		return nil, normalizeError(ctx, "cardService.ListCardsByCourseCode", err)
	}
	return cards, nil
}

// ListCardsByQuizID はクイズと同じコース・カテゴリのカードを返します
func (s *cardService) ListCardsByQuizID(ctx context.Context, quizID uuid.UUID) ([]*model.Card, error) {
	quiz, err := s.quizRepo.FindByID(ctx, s.db, quizID)
	if err != nil {
		return nil, normalizeError(ctx, "cardService.ListCardsByQuizID", err)
	}
	cards, err := s.cardRepo.FindByCourseCategory(ctx, s.db, quiz.CourseCode, quiz.Category)
	if err != nil {
		return nil, normalizeError(ctx, "cardService.ListCardsByQuizID", err)
	}
	return cards, nil
}

func validateCardFields(question, answer, courseCode, category string) error {
	if err := requireText("question", "問題", question); err != nil {
		return err
	}
	if err := requireText("answer", "解答", answer); err != nil {
		return err
	}
	if err := requireText("course_code", "コースコード", courseCode); err != nil {
		return err
	}
	return requireText("category", "カテゴリ", category)
}

// ensureCourse はコースの存在を確認し、無ければ入力エラーとして返します
func (s *cardService) ensureCourse(ctx context.Context, tx *gorm.DB, courseCode string) error {
	_, err := s.courseRepo.FindByCode(ctx, tx, courseCode)
	if errors.Is(err, model.ErrNotFound) {
		return errCourseNotFound
	}
	return err
}

func (s *cardService) CreateCard(ctx context.Context, req *model.CreateCardRequest) (*model.Card, error) {
	if err := validateCardFields(req.Question, req.Answer, req.CourseCode, req.Category); err != nil {
		return nil, err
	}

	var created *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureCourse(ctx, tx, req.CourseCode); err != nil {
			return err
		}
		card := &model.Card{
			ID:         uuid.New(),
			Question:   req.Question,
			Answer:     req.Answer,
			CourseCode: req.CourseCode,
			Category:   req.Category,
			Difficulty: req.Difficulty,
			Tags:       datatypes.JSONSlice[string](model.NormalizeTags(req.Tags)),
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			return err
		}
		created = card
		return nil
	})
	if err != nil {
		return nil, normalizeError(ctx, "cardService.CreateCard", err)
	}
	return created, nil
}

func (s *cardService) UpdateCard(ctx context.Context, req *model.UpdateCardRequest) (*model.Card, error) {
	if err := validateCardFields(req.Question, req.Answer, req.CourseCode, req.Category); err != nil {
		return nil, err
	}

	var updated *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.cardRepo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}
		if req.CourseCode != current.CourseCode {
			if err := s.ensureCourse(ctx, tx, req.CourseCode); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"question":    req.Question,
			"answer":      req.Answer,
			"course_code": req.CourseCode,
			"category":    req.Category,
			"difficulty":  req.Difficulty,
			"tags":        datatypes.JSONSlice[string](model.NormalizeTags(req.Tags)),
			"updated_at":  time.Now(),
		}
		if err := s.cardRepo.Update(ctx, tx, req.ID, updates); err != nil {
			return err
		}

		updated, err = s.cardRepo.FindByID(ctx, tx, req.ID)
		return err
	})
	if err != nil {
		return nil, normalizeError(ctx, "cardService.UpdateCard", err)
	}
	return updated, nil
}

func (s *cardService) DeleteCard(ctx context.Context, cardID uuid.UUID) (uuid.UUID, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.cardRepo.Delete(ctx, tx, cardID)
	})
	if err != nil {
		return uuid.Nil, normalizeError(ctx, "cardService.DeleteCard", err)
	}
	return cardID, nil
}

// GetAvailableTags は全カードのタグを重複なしで昇順に返します
func (s *cardService) GetAvailableTags(ctx context.Context) ([]string, error) {
	tagLists, err := s.cardRepo.FindAllTags(ctx, s.db)
	if err != nil {
		return nil, normalizeError(ctx, "cardService.GetAvailableTags", err)
	}

	set := make(map[string]struct{})
	for _, tags := range tagLists {
		for _, tag := range tags {
			set[tag] = struct{}{}
		}
	}

	result := make([]string, 0, len(set))
	for tag := range set {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result, nil
}
