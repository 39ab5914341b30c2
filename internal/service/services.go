package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/auth"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/draft"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/repository"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/validation"
	"github.com/rs/zerolog"
)

// ErrNotOwner is returned when a session tries to mutate another
// author's post or comment
var ErrNotOwner = errors.New("service: not the owner")

// ErrNotFound is returned when the target of a mutation does not exist
var ErrNotFound = errors.New("service: not found")

// InvalidInputError carries field-level validation failures
type InvalidInputError struct {
	Errors []validation.ValidationError
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %d field error(s)", len(e.Errors))
}

// PostService defines post operations gated on session identity
type PostService interface {
	Create(ctx context.Context, session *auth.Session, input *models.PostInput) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	ListPublishedPage(ctx context.Context, page, perPage int) (*PostPage, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	ListAll(ctx context.Context, session *auth.Session, limit int) ([]*models.Post, error)
	ListByTag(ctx context.Context, tag string, limit int) ([]*models.Post, error)
	Tags(ctx context.Context) ([]string, error)
	Search(ctx context.Context, term string, limit int) ([]*models.Post, error)
	Update(ctx context.Context, session *auth.Session, id string, upd *models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, session *auth.Session, id string) error
	Unpublish(ctx context.Context, session *auth.Session, id string) error
}

// CommentService defines comment operations gated on session identity
type CommentService interface {
	Add(ctx context.Context, session *auth.Session, postID, content string) (*models.Comment, error)
	List(ctx context.Context, postID string) ([]*models.Comment, error)
	Delete(ctx context.Context, session *auth.Session, commentID string) error
}

// Services holds all service interfaces
type Services struct {
	Post    PostService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, drafts *draft.Store, log zerolog.Logger) *Services {
	return &Services{
		Post:    newPostService(repos.Post, drafts, log),
		Comment: newCommentService(repos.Comment, repos.Post, log),
	}
}
