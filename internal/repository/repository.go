package repository

import (
	"context"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/docstore"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/rs/zerolog"
)

const (
	postsCollection    = "posts"
	commentsCollection = "comments"
)

// PostRepository defines the interface for post data operations. Lookup
// misses return (nil, nil), distinct from errors.
type PostRepository interface {
	Create(ctx context.Context, input *models.PostInput) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	ListPublished(ctx context.Context, limit int) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	ListAll(ctx context.Context, limit int) ([]*models.Post, error)
	ListByTag(ctx context.Context, tag string, limit int) ([]*models.Post, error)
	ListAllTags(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, upd *models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	Search(ctx context.Context, term string, limit int) ([]*models.Post, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post    PostRepository
	Comment CommentRepository
}

// New creates all repositories on the given document store
func New(store docstore.Store, log zerolog.Logger) *Repositories {
	return &Repositories{
		Post:    NewPostRepo(store, log),
		Comment: NewCommentRepo(store, log),
	}
}
