// Package service contains the application's business logic between handlers
// and repositories.
package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// PostService implements post creation, editing and deletion on top of the
// post repository.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the form fields for a new post.
type CreatePostInput struct {
	Title   string
	Content string
}

// UpdatePostInput carries the form fields for editing an existing post.
type UpdatePostInput struct {
	ID      uint
	Title   string
	Content string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}

	post.Title = in.Title
	post.Content = in.Content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}
