package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// CommentService implements comment creation and listing for posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// AddCommentInput carries the form field for a new comment.
type AddCommentInput struct {
	PostID uint
	Text   string
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	if in.Text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	comment := &models.Comment{
		PostID: in.PostID,
		Text:   in.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
