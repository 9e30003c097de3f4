//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
// internal/service/quiz_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	ListQuizzes(ctx context.Context) ([]*model.QuizView, error)
	GetQuiz(ctx context.Context, quizID uuid.UUID) (*model.QuizView, error)
	ListOngoingQuizzes(ctx context.Context) ([]*model.QuizView, error)
	ListCompletedQuizzes(ctx context.Context) ([]*model.QuizView, error)
	CreateQuiz(ctx context.Context, req *model.CreateQuizRequest) (*model.Quiz, error)
	UpdateQuiz(ctx context.Context, req *model.UpdateQuizRequest) (*model.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID uuid.UUID) (uuid.UUID, error)
	SetQuizCompletion(ctx context.Context, quizID uuid.UUID, isCompleted bool) (*model.Quiz, error)
	SetCurrentIndex(ctx context.Context, quizID uuid.UUID, currentIndex int) (*model.Quiz, error)
	SetCorrectCount(ctx context.Context, quizID uuid.UUID, correctCount int) (*model.Quiz, error)
	SetHintUsed(ctx context.Context, quizID uuid.UUID, hintUsed bool) (*model.Quiz, error)
	RenameQuiz(ctx context.Context, courseCode string, req *model.RenameQuizRequest) (*model.RenameQuizResult, error)
}

// QuizOptions はクイズの状態遷移に関する設定
type QuizOptions struct {
	// 再開 (未完了に戻す) 時に正解数も0に戻すか
	ReopenResetsCorrectCount bool
}

type quizService struct {
	db         *gorm.DB
	quizRepo   repository.QuizRepository
	cardRepo   repository.CardRepository
	courseRepo repository.CourseRepository
	opts       QuizOptions
}

func NewQuizService(db *gorm.DB, quizRepo repository.QuizRepository, cardRepo repository.CardRepository, courseRepo repository.CourseRepository, opts QuizOptions) QuizService {
	return &quizService{
		db:         db,
		quizRepo:   quizRepo,
		cardRepo:   cardRepo,
		courseRepo: courseRepo,
		opts:       opts,
	}
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]*model.QuizView, error) {
	views, err := s.quizRepo.FindViews(ctx, s.db)
	if err != nil {
		return nil, normalizeError(ctx, "quizService.ListQuizzes", err)
	}
	return views, nil
}

func (s *quizService) GetQuiz(ctx context.Context, quizID uuid.UUID) (*model.QuizView, error) {
	view, err := s.quizRepo.FindViewByID(ctx, s.db, quizID)
	if err != nil {
		return nil, normalizeError(ctx, "quizService.GetQuiz", err)
	}
	return view, nil
}

func (s *quizService) ListOngoingQuizzes(ctx context.Context) ([]*model.QuizView, error) {
	views, err := s.quizRepo.FindViewsByCompletion(ctx, s.db, false)
	if err != nil {
		return nil, normalizeError(ctx, "quizService.ListOngoingQuizzes", err)
	}
	return views, nil
}

func (s *quizService) ListCompletedQuizzes(ctx context.Context) ([]*model.QuizView, error) {
	views, err := s.quizRepo.FindViewsByCompletion(ctx, s.db, true)
	if err != nil {
		return nil, normalizeError(ctx, "quizService.ListCompletedQuizzes", err)
	}
	return views, nil
}

func (s *quizService) CreateQuiz(ctx context.Context, req *model.CreateQuizRequest) (*model.Quiz, error) {
	if err := requireText("course_code", "コースコード", req.CourseCode); err != nil {
		return nil, err
	}
	if err := requireText("category", "カテゴリ", req.Category); err != nil {
		return nil, err
	}

	var created *model.Quiz
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.courseRepo.FindByCode(ctx, tx, req.CourseCode); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errCourseNotFound
			}
			return err
		}
		quiz := &model.Quiz{
			ID:         uuid.New(),
			CourseCode: req.CourseCode,
			Category:   req.Category,
			StartedAt:  time.Now(),
		}
		if err := s.quizRepo.Create(ctx, tx, quiz); err != nil {
			return err
		}
		created = quiz
		return nil
	})
	if err != nil {
		return nil, normalizeError(ctx, "quizService.CreateQuiz", err)
	}
	return created, nil
}

// checkBounds は値が 0 以上 対象カード数以下であることを確認します
func checkBounds(field, label string, value int, cardCount int64) error {
	if value < 0 || int64(value) > cardCount {
		return validationError(field, fmt.Sprintf("%sは0以上%d以下で入力してください。", label, cardCount))
	}
	return nil
}

// mutate はトランザクション内でクイズ (対象カード数付き) を読み、更新内容を決めて反映します
func (s *quizService) mutate(ctx context.Context, op string, quizID uuid.UUID, build func(view *model.QuizView) (map[string]interface{}, error)) (*model.Quiz, error) {
	var updated *model.Quiz
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		view, err := s.quizRepo.FindViewByID(ctx, tx, quizID)
		if err != nil {
			return err
		}
		updates, err := build(view)
		if err != nil {
			return err
		}
		if err := s.quizRepo.Update(ctx, tx, quizID, updates); err != nil {
			return err
		}
		updated, err = s.quizRepo.FindByID(ctx, tx, quizID)
		return err
	})
	if err != nil {
		return nil, normalizeError(ctx, op, err)
	}
	return updated, nil
}

func (s *quizService) UpdateQuiz(ctx context.Context, req *model.UpdateQuizRequest) (*model.Quiz, error) {
	return s.mutate(ctx, "quizService.UpdateQuiz", req.ID, func(view *model.QuizView) (map[string]interface{}, error) {
		if err := checkBounds("current_index", "現在位置", req.CurrentIndex, view.CardCount); err != nil {
			return nil, err
		}
		if err := checkBounds("correct_count", "正解数", req.CorrectCount, view.CardCount); err != nil {
			return nil, err
		}
		var completedAt *time.Time
		switch {
		case req.IsCompleted && view.IsCompleted:
			// 完了済みなら最初の完了日時を保つ
			completedAt = view.CompletedAt
		case req.IsCompleted:
			now := time.Now()
			completedAt = &now
		}
		return map[string]interface{}{
			"current_index": req.CurrentIndex,
			"correct_count": req.CorrectCount,
			"is_completed":  req.IsCompleted,
			"completed_at":  completedAt,
		}, nil
	})
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID uuid.UUID) (uuid.UUID, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.quizRepo.Delete(ctx, tx, quizID)
	})
	if err != nil {
		return uuid.Nil, normalizeError(ctx, "quizService.DeleteQuiz", err)
	}
	return quizID, nil
}

// SetQuizCompletion は完了・再開を切り替えます。
// 再開時は現在位置とヒント使用をリセットし、設定により正解数もリセットします。
func (s *quizService) SetQuizCompletion(ctx context.Context, quizID uuid.UUID, isCompleted bool) (*model.Quiz, error) {
	return s.mutate(ctx, "quizService.SetQuizCompletion", quizID, func(view *model.QuizView) (map[string]interface{}, error) {
		if isCompleted {
			if view.IsCompleted {
				return map[string]interface{}{"is_completed": true}, nil
			}
			return map[string]interface{}{
				"is_completed": true,
				"completed_at": time.Now(),
			}, nil
		}
		updates := map[string]interface{}{
			"is_completed":  false,
			"completed_at":  nil,
			"current_index": 0,
			"hint_used":     false,
		}
		if s.opts.ReopenResetsCorrectCount {
			updates["correct_count"] = 0
		}
		return updates, nil
	})
}

func (s *quizService) SetCurrentIndex(ctx context.Context, quizID uuid.UUID, currentIndex int) (*model.Quiz, error) {
	return s.mutate(ctx, "quizService.SetCurrentIndex", quizID, func(view *model.QuizView) (map[string]interface{}, error) {
		if err := checkBounds("current_index", "現在位置", currentIndex, view.CardCount); err != nil {
			return nil, err
		}
		return map[string]interface{}{"current_index": currentIndex}, nil
	})
}

func (s *quizService) SetCorrectCount(ctx context.Context, quizID uuid.UUID, correctCount int) (*model.Quiz, error) {
	return s.mutate(ctx, "quizService.SetCorrectCount", quizID, func(view *model.QuizView) (map[string]interface{}, error) {
		if err := checkBounds("correct_count", "正解数", correctCount, view.CardCount); err != nil {
			return nil, err
		}
		return map[string]interface{}{"correct_count": correctCount}, nil
	})
}

func (s *quizService) SetHintUsed(ctx context.Context, quizID uuid.UUID, hintUsed bool) (*model.Quiz, error) {
	return s.mutate(ctx, "quizService.SetHintUsed", quizID, func(view *model.QuizView) (map[string]interface{}, error) {
		return map[string]interface{}{"hint_used": hintUsed}, nil
	})
}

// RenameQuiz はコース内のカテゴリ名をカードとクイズの両方で1トランザクションで変更します
func (s *quizService) RenameQuiz(ctx context.Context, courseCode string, req *model.RenameQuizRequest) (*model.RenameQuizResult, error) {
	if err := requireText("old", "変更前のカテゴリ", req.Old); err != nil {
		return nil, err
	}
	if err := requireText("new", "変更後のカテゴリ", req.New); err != nil {
		return nil, err
	}

	result := &model.RenameQuizResult{CourseCode: courseCode, Category: req.New}
	// カテゴリは保存された文字列のまま比較・更新する
	if req.Old == req.New {
		return result, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if result.CardsUpdated, err = s.cardRepo.RenameCategory(ctx, tx, courseCode, req.Old, req.New); err != nil {
			return err
		}
		if result.QuizzesUpdated, err = s.quizRepo.RenameCategory(ctx, tx, courseCode, req.Old, req.New); err != nil {
			return err
		}
		if result.CardsUpdated == 0 && result.QuizzesUpdated == 0 {
			return model.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, normalizeError(ctx, "quizService.RenameQuiz", err)
	}

	middleware.GetLogger(ctx).Info("Category renamed",
		"course_code", courseCode,
		"old", req.Old,
		"new", req.New,
		"cards_updated", result.CardsUpdated,
		"quizzes_updated", result.QuizzesUpdated,
	)
	return result, nil
}
