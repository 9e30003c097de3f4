// cmd/db_sample_by_gorm/main.go
//
// サンプルのコース・カード・クイズを投入するツール。
// 既に同じコースコードがある場合は何もしない。
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"go_keiko_flashcards/internal/config"
	"go_keiko_flashcards/internal/middleware"
	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/repository"
	"go_keiko_flashcards/internal/service"
)

type sampleCard struct {
	Question string
	Answer   string
	Category string
	Tags     []string
}

var sampleCourse = model.CreateCourseRequest{
	Name:        "Intro to Computer Science",
	CourseCode:  "CS121",
	Description: "Basic data structures and algorithms",
}

var sampleCards = []sampleCard{
	{Question: "What is a stack?", Answer: "A LIFO collection", Category: "data-structures", Tags: []string{"stack", "basics"}},
	{Question: "What is a queue?", Answer: "A FIFO collection", Category: "data-structures", Tags: []string{"queue", "basics"}},
	{Question: "What is a hash map?", Answer: "A key-value store with O(1) average lookup", Category: "data-structures", Tags: []string{"hash", "map"}},
	{Question: "What is binary search?", Answer: "Halving a sorted range each step", Category: "algorithms", Tags: []string{"search", "basics"}},
	{Question: "What is the complexity of merge sort?", Answer: "O(n log n)", Category: "algorithms", Tags: []string{"sort"}},
}

func main() {
	configDir := pflag.String("config", "../../configs", "config.yaml を置いたディレクトリ")
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configDir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repository.NewDB(repository.DBOptions{
		Driver: config.Cfg.Database.Driver,
		URL:    config.Cfg.Database.URL,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to connect database using GORM: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	courseRepo := repository.NewGormCourseRepository()
	cardRepo := repository.NewGormCardRepository()
	quizRepo := repository.NewGormQuizRepository()
	courseService := service.NewCourseService(db, courseRepo, cardRepo, quizRepo)
	cardService := service.NewCardService(db, cardRepo, courseRepo, quizRepo)
	quizService := service.NewQuizService(db, quizRepo, cardRepo, courseRepo, service.QuizOptions{
		ReopenResetsCorrectCount: config.Cfg.Quiz.ReopenResetsCorrectCount,
	})

	ctx := middleware.WithLogger(context.Background(), logger)

	fmt.Println("\n--- Creating sample course ---")
	course, err := courseService.CreateCourse(ctx, &sampleCourse)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			fmt.Printf("Course %s already exists, nothing to do.\n", sampleCourse.CourseCode)
			return
		}
		log.Fatalf("Failed to create course: %v", err)
	}
	fmt.Printf("Created course: ID=%s, Code=%s\n", course.ID, course.CourseCode)

	fmt.Println("\n--- Creating sample cards ---")
	for _, c := range sampleCards {
		card, err := cardService.CreateCard(ctx, &model.CreateCardRequest{
			Question:   c.Question,
			Answer:     c.Answer,
			CourseCode: course.CourseCode,
			Category:   c.Category,
			Tags:       c.Tags,
		})
		if err != nil {
			log.Fatalf("Failed to create card %q: %v", c.Question, err)
		}
		fmt.Printf("- ID=%s, Category=%s, Question=%s\n", card.ID, card.Category, card.Question)
	}

	fmt.Println("\n--- Starting a quiz ---")
	quiz, err := quizService.CreateQuiz(ctx, &model.CreateQuizRequest{CourseCode: course.CourseCode, Category: "data-structures"})
	if err != nil {
		log.Fatalf("Failed to create quiz: %v", err)
	}
	if _, err := quizService.SetCurrentIndex(ctx, quiz.ID, 1); err != nil {
		log.Fatalf("Failed to advance quiz: %v", err)
	}
	if _, err := quizService.SetCorrectCount(ctx, quiz.ID, 1); err != nil {
		log.Fatalf("Failed to set correct count: %v", err)
	}

	view, err := courseService.GetCourse(ctx, course.ID)
	if err != nil {
		log.Fatalf("Failed to read course view: %v", err)
	}
	fmt.Printf("\nCourse %s: questions=%d categories=%v progress=%d%%\n",
		view.CourseCode, view.Questions, view.Categories, view.Progress)

	fmt.Println("\n--- Sample data loaded ---")
}
