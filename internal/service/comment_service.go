package service

import (
	"context"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/auth"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/repository"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/validation"
	"github.com/rs/zerolog"
)

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, posts repository.PostRepository, log zerolog.Logger) CommentService {
	return &commentService{
		comments: comments,
		posts:    posts,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Add appends a comment to an existing post's thread
func (s *commentService) Add(ctx context.Context, session *auth.Session, postID, content string) (*models.Comment, error) {
	if session == nil {
		return nil, auth.ErrAuthRequired
	}
	if errs := validation.ValidateComment(content); len(errs) > 0 {
		return nil, &InvalidInputError{Errors: errs}
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	return s.comments.Create(ctx, &models.Comment{
		PostID:     postID,
		AuthorID:   session.UserID,
		AuthorName: session.DisplayName,
		Content:    content,
	})
}

// List returns a post's comments newest first
func (s *commentService) List(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// Delete removes a comment the session authored
func (s *commentService) Delete(ctx context.Context, session *auth.Session, commentID string) error {
	if session == nil {
		return auth.ErrAuthRequired
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.AuthorID != session.UserID {
		return ErrNotOwner
	}
	return s.comments.Delete(ctx, commentID)
}
