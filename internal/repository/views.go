package repository

import (
	"context"

	"go_keiko_flashcards/internal/model"

	"gorm.io/gorm"
)

// quizViewSelect は quizzes の各行に対象カード数 (同じ course_code + category のカード) を付けるSELECT句
const quizViewSelect = `quizzes.*, (
	SELECT COUNT(*) FROM cards
	WHERE cards.course_code = quizzes.course_code AND cards.category = quizzes.category
) AS card_count`

type scopeFunc func(*gorm.DB) *gorm.DB

// findQuizViews は QuizView を取得し、進捗率を計算して返します
func findQuizViews(ctx context.Context, db *gorm.DB, scope scopeFunc) ([]*model.QuizView, error) {
	var views []*model.QuizView
	query := db.WithContext(ctx).Table("quizzes").Select(quizViewSelect)
	if scope != nil {
		query = query.Scopes(scope)
	}
	if err := query.Order("quizzes.started_at ASC").Scan(&views).Error; err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Progress = model.QuizProgress(v.CurrentIndex, v.CardCount, v.IsCompleted)
	}
	return views, nil
}

type courseCardCount struct {
	CourseCode string
	Count      int64
}

type courseCategory struct {
	CourseCode string
	Category   string
}

// findCourseViews は対象のコースを取得し、カード数・カテゴリ・進捗率を集計して返します。
// コース数に関わらずクエリは4本。
func findCourseViews(ctx context.Context, db *gorm.DB, scope scopeFunc) ([]*model.CourseView, error) {
	var courses []*model.Course
	query := db.WithContext(ctx).Model(&model.Course{})
	if scope != nil {
		query = query.Scopes(scope)
	}
	if err := query.Order("created_at ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return []*model.CourseView{}, nil
	}

	codes := make([]string, 0, len(courses))
	for _, c := range courses {
		codes = append(codes, c.CourseCode)
	}

	var counts []courseCardCount
	if err := db.WithContext(ctx).Model(&model.Card{}).
		Select("course_code, COUNT(*) AS count").
		Where("course_code IN ?", codes).
		Group("course_code").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	var categories []courseCategory
	if err := db.WithContext(ctx).Model(&model.Card{}).
		Select("DISTINCT course_code, category").
		Where("course_code IN ?", codes).
		Order("category ASC").
		Scan(&categories).Error; err != nil {
		return nil, err
	}

	quizzes, err := findQuizViews(ctx, db, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("quizzes.course_code IN ?", codes)
	})
	if err != nil {
		return nil, err
	}

	countByCode := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByCode[c.CourseCode] = c.Count
	}
	categoriesByCode := make(map[string][]string, len(courses))
	for _, c := range categories {
		categoriesByCode[c.CourseCode] = append(categoriesByCode[c.CourseCode], c.Category)
	}
	quizzesByCode := make(map[string][]model.QuizView, len(courses))
	for _, q := range quizzes {
		quizzesByCode[q.CourseCode] = append(quizzesByCode[q.CourseCode], *q)
	}

	views := make([]*model.CourseView, 0, len(courses))
	for _, c := range courses {
		cats := categoriesByCode[c.CourseCode]
		if cats == nil {
			cats = []string{}
		}
		views = append(views, &model.CourseView{
			Course:     *c,
			Questions:  countByCode[c.CourseCode],
			Categories: cats,
			Progress:   model.CourseProgress(cats, quizzesByCode[c.CourseCode]),
		})
	}
	return views, nil
}
