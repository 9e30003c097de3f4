package service

import (
	"errors"
	"testing"
	"time"

	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_courseService_CreateCourse(t *testing.T) {
	ctx := testContext()
	s := newTestServices(t, QuizOptions{})

	created, err := s.course.CreateCourse(ctx, &model.CreateCourseRequest{
		Name:        "Algorithms",
		CourseCode:  "CS121",
		Description: "sorting and searching",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := s.course.GetCourse(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", got.Name)
	assert.Equal(t, "CS121", got.CourseCode)
	assert.Equal(t, "sorting and searching", got.Description)
	assert.False(t, got.CreatedAt.IsZero(), "created_at should be set")
	assert.Nil(t, got.UpdatedAt, "updated_at should be NULL after create")
	assert.Equal(t, int64(0), got.Questions)
	assert.Equal(t, 0, got.Progress)
	assert.Equal(t, []string{}, got.Categories)

	byCode, err := s.course.GetCourseByCode(ctx, "CS121")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)
}

func Test_courseService_CreateCourse_Errors(t *testing.T) {
	ctx := testContext()
	s := newTestServices(t, QuizOptions{})
	s.mustCourse(t, "CS121")

	tests := []struct {
		name    string
		req     *model.CreateCourseRequest
		wantErr error
	}{
		{name: "異常系: コース名が空", req: &model.CreateCourseRequest{Name: " ", CourseCode: "CS200"}, wantErr: model.ErrInvalidInput},
		{name: "異常系: コースコードが空", req: &model.CreateCourseRequest{Name: "x", CourseCode: ""}, wantErr: model.ErrInvalidInput},
		{name: "異常系: コースコードが重複", req: &model.CreateCourseRequest{Name: "x", CourseCode: "CS121"}, wantErr: model.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, err := s.course.CreateCourse(ctx, tt.req)
			assert.Nil(t, course)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_courseService_UpdateCourse(t *testing.T) {
	ctx := testContext()
	s := newTestServices(t, QuizOptions{})
	course := s.mustCourse(t, "CS121")
	s.mustCourse(t, "MA101")
	s.mustCards(t, "CS121", "sorting", 2)
	quiz, err := s.quiz.CreateQuiz(ctx, &model.CreateQuizRequest{CourseCode: "CS121", Category: "sorting"})
	require.NoError(t, err)

	t.Run("正常系: updated_at が進み、コースコード変更がカード・クイズに反映される", func(t *testing.T) {
		first, err := s.course.UpdateCourse(ctx, &model.UpdateCourseRequest{
			ID: course.ID, Name: "Algorithms II", CourseCode: "CS122", Description: "new",
		})
		require.NoError(t, err)
		require.NotNil(t, first.UpdatedAt)
		assert.False(t, first.UpdatedAt.Before(first.CreatedAt))
		assert.Equal(t, "Algorithms II", first.Name)
		assert.Equal(t, "CS122", first.CourseCode)

		cards, err := s.card.ListCardsByCourseCode(ctx, "CS122")
		require.NoError(t, err)
		assert.Len(t, cards, 2)
		q, err := s.quiz.GetQuiz(ctx, quiz.ID)
		require.NoError(t, err)
		assert.Equal(t, "CS122", q.CourseCode)

		time.Sleep(5 * time.Millisecond)
		second, err := s.course.UpdateCourse(ctx, &model.UpdateCourseRequest{
			ID: course.ID, Name: "Algorithms III", CourseCode: "CS122",
		})
		require.NoError(t, err)
		require.NotNil(t, second.UpdatedAt)
		assert.False(t, second.UpdatedAt.Before(*first.UpdatedAt), "updated_at must not go backwards")
		assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix(), "created_at is immutable")
	})

	t.Run("異常系: 他のコースのコードに変更", func(t *testing.T) {
		_, err := s.course.UpdateCourse(ctx, &model.UpdateCourseRequest{ID: course.ID, Name: "x", CourseCode: "MA101"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: 存在しないID", func(t *testing.T) {
		_, err := s.course.UpdateCourse(ctx, &model.UpdateCourseRequest{ID: uuid.New(), Name: "x", CourseCode: "ZZ1"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_courseService_DeleteCourse_Cascades(t *testing.T) {
	ctx := testContext()
	s := newTestServices(t, QuizOptions{})
	course := s.mustCourse(t, "CS121")
	s.mustCourse(t, "MA101")
	s.mustCards(t, "CS121", "sorting", 2)
	s.mustCards(t, "MA101", "algebra", 1)
	_, err := s.quiz.CreateQuiz(ctx, &model.CreateQuizRequest{CourseCode: "CS121", Category: "sorting"})
	require.NoError(t, err)

	deletedID, err := s.course.DeleteCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, deletedID)

	_, err = s.course.GetCourse(ctx, course.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	cards, err := s.card.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1, "only cards of other courses remain")
	assert.Equal(t, "MA101", cards[0].CourseCode)

	quizzes, err := s.quiz.ListQuizzes(ctx)
	require.NoError(t, err)
	assert.Empty(t, quizzes)

	_, err = s.course.DeleteCourse(ctx, course.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_courseService_GetCategories(t *testing.T) {
	ctx := testContext()
	s := newTestServices(t, QuizOptions{})
	course := s.mustCourse(t, "CS121")
	s.mustCard(t, "CS121", "sorting")
	s.mustCard(t, "CS121", "graphs")
	s.mustCard(t, "CS121", "sorting")

	categories, err := s.course.GetCategories(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"graphs", "sorting"}, categories)

	_, err = s.course.GetCategories(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_courseService_ListCourses_Progress(t *testing.T) {
	ctx := testContext()
	s := newTestServices(t, QuizOptions{})
	s.mustCourse(t, "CS121")
	s.mustCards(t, "CS121", "sorting", 4)
	s.mustCards(t, "CS121", "graphs", 2)

	quiz, err := s.quiz.CreateQuiz(ctx, &model.CreateQuizRequest{CourseCode: "CS121", Category: "sorting"})
	require.NoError(t, err)
	_, err = s.quiz.SetCurrentIndex(ctx, quiz.ID, 2)
	require.NoError(t, err)

	courses, err := s.course.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	// sorting 50%, graphs クイズなし 0% -> 25%
	assert.Equal(t, 25, courses[0].Progress)
	assert.Equal(t, int64(6), courses[0].Questions)
	assert.Equal(t, []string{"graphs", "sorting"}, courses[0].Categories)
}

func Test_courseService_StorageErrors(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	courseRepo := mocks.NewCourseRepository(t)
	svc := NewCourseService(db, courseRepo, mocks.NewCardRepository(t), mocks.NewQuizRepository(t))

	t.Run("StorageUnavailable はそのまま返る", func(t *testing.T) {
		courseRepo.On("FindViews", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(nil, model.ErrStorageUnavailable).Once()

		_, err := svc.ListCourses(ctx)
		assert.ErrorIs(t, err, model.ErrStorageUnavailable)
	})

	t.Run("想定外のエラーは ErrInternalServer にまとめる", func(t *testing.T) {
		id := uuid.New()
		courseRepo.On("FindViewByID", ctx, mock.AnythingOfType("*gorm.DB"), id).
			Return(nil, errors.New("boom")).Once()

		_, err := svc.GetCourse(ctx, id)
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})

	t.Run("作成時のリポジトリエラーでロールバック", func(t *testing.T) {
		courseRepo.On("CheckCodeExists", ctx, mock.AnythingOfType("*gorm.DB"), "CS121", (*uuid.UUID)(nil)).
			Return(false, nil).Once()
		courseRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Course")).
			Return(model.ErrConflict).Once()

		course, err := svc.CreateCourse(ctx, &model.CreateCourseRequest{Name: "x", CourseCode: "CS121"})
		assert.Nil(t, course)
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}
