package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/docstore"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/rs/zerolog"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	store docstore.Store
	log   zerolog.Logger
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(store docstore.Store, log zerolog.Logger) CommentRepository {
	return &commentRepo{
		store: store,
		log:   log.With().Str("component", "comment_repo").Logger(),
	}
}

// Create appends a comment to its post's thread
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	now := time.Now().UTC()
	data := map[string]interface{}{
		"postId":     comment.PostID,
		"authorId":   comment.AuthorID,
		"authorName": comment.AuthorName,
		"content":    comment.Content,
		"createdAt":  now,
	}

	id, err := r.store.Add(ctx, commentsCollection, data)
	if err != nil {
		return nil, &RepositoryError{Op: "create comment", Err: err}
	}

	doc, err := r.store.Get(ctx, commentsCollection, id)
	if err != nil {
		return nil, &RepositoryError{Op: "create comment read-back", Err: err}
	}
	return MapComment(doc)
}

// GetByID returns the comment or (nil, nil) when the id does not exist
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	doc, err := r.store.Get(ctx, commentsCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment by id: %w", err)
	}
	return MapComment(doc)
}

// ListByPost returns a post's comments newest first. When the store
// cannot satisfy the ordering the result is sorted here instead.
func (r *commentRepo) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	q := docstore.Query{
		Filters: []docstore.Filter{{Field: "postId", Op: docstore.OpEqual, Value: postID}},
		OrderBy: "createdAt",
	}

	docs, err := r.store.Query(ctx, commentsCollection, q)
	if err != nil {
		r.log.Warn().Err(err).Str("post_id", postID).Msg("Ordered comment query failed, retrying without ordering")

		q.OrderBy = ""
		docs, fallbackErr := r.store.Query(ctx, commentsCollection, q)
		if fallbackErr != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}
		comments, mapErr := r.mapDocs(docs)
		if mapErr != nil {
			return nil, mapErr
		}
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[j].CreatedAt.Before(comments[i].CreatedAt)
		})
		return comments, nil
	}

	return r.mapDocs(docs)
}

// Delete removes a comment permanently
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, commentsCollection, id); err != nil {
		return &RepositoryError{Op: "delete comment", Err: err}
	}
	return nil
}

func (r *commentRepo) mapDocs(docs []docstore.Document) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0, len(docs))
	for i := range docs {
		c, err := MapComment(&docs[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
