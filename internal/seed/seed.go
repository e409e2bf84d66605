// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	NumTasks    int
	ShouldClean bool
}

// Seeder populates the database with demo content.
type Seeder struct {
	db       *gorm.DB
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	tasks    repository.TaskRepository
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:       db,
		users:    repository.NewUserRepository(db),
		posts:    repository.NewPostRepository(db),
		comments: repository.NewCommentRepository(db),
		tasks:    repository.NewTaskRepository(db),
	}
}

// ClearAll removes all seeded content.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"comments", "posts", "tasks", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Run creates users, posts with comments, and tasks per the options.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Password: gofakeit.Password(true, true, true, false, false, 12),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}

	for i := 0; i < opts.NumPosts; i++ {
		post := &models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 8, "\n"),
		}
		if err := s.posts.Create(ctx, post); err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}

		for j := 0; j < opts.NumComments; j++ {
			comment := &models.Comment{
				PostID: post.ID,
				Text:   gofakeit.Sentence(8),
			}
			if err := s.comments.Create(ctx, comment); err != nil {
				return fmt.Errorf("failed to seed comment: %w", err)
			}
		}
	}

	for i := 0; i < opts.NumTasks; i++ {
		task := &models.Task{Task: gofakeit.VerbAction() + " " + gofakeit.NounConcrete()}
		if gofakeit.Bool() {
			due := gofakeit.DateRange(time.Now(), time.Now().AddDate(0, 1, 0))
			task.DueDate = &due
		}
		if err := s.tasks.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to seed task: %w", err)
		}
	}

	middleware.Logger.Info("Seeding completed",
		slog.Int("users", opts.NumUsers),
		slog.Int("posts", opts.NumPosts),
		slog.Int("comments_per_post", opts.NumComments),
		slog.Int("tasks", opts.NumTasks),
	)
	return nil
}
