package service

import (
	"context"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/auth"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/draft"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/repository"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/validation"
	"github.com/rs/zerolog"
)

// DefaultPerPage is the page window used by the listing surface
const DefaultPerPage = 10

// PostPage is one window of the published listing
type PostPage struct {
	Posts      []*models.Post `json:"posts"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPosts int            `json:"total_posts"`
	TotalPages int            `json:"total_pages"`
}

type postService struct {
	posts  repository.PostRepository
	drafts *draft.Store
	log    zerolog.Logger
}

func newPostService(posts repository.PostRepository, drafts *draft.Store, log zerolog.Logger) PostService {
	return &postService{
		posts:  posts,
		drafts: drafts,
		log:    log.With().Str("service", "post").Logger(),
	}
}

// Create stores a new post owned by the session's user. A published
// create clears the local draft slot once the write is confirmed.
func (s *postService) Create(ctx context.Context, session *auth.Session, input *models.PostInput) (*models.Post, error) {
	if session == nil {
		return nil, auth.ErrAuthRequired
	}
	if errs := validation.ValidatePostInput(input); len(errs) > 0 {
		return nil, &InvalidInputError{Errors: errs}
	}

	input.AuthorID = session.UserID
	input.Content = validation.SanitizeContent(input.Content)

	post, err := s.posts.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	if post.Published {
		s.drafts.Clear()
	}
	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.posts.GetBySlug(ctx, slug)
}

// ListPublishedPage windows the published listing the way the original
// pagination does: fetch the set, slice the requested page.
func (s *postService) ListPublishedPage(ctx context.Context, page, perPage int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	posts, err := s.posts.ListPublished(ctx, 0)
	if err != nil {
		return nil, err
	}

	total := len(posts)
	totalPages := (total + perPage - 1) / perPage
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return &PostPage{
		Posts:      posts[start:end],
		Page:       page,
		PerPage:    perPage,
		TotalPosts: total,
		TotalPages: totalPages,
	}, nil
}

func (s *postService) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}

// ListAll returns every post, drafts included, newest first. The full
// archive is only visible to signed-in users.
func (s *postService) ListAll(ctx context.Context, session *auth.Session, limit int) ([]*models.Post, error) {
	if session == nil {
		return nil, auth.ErrAuthRequired
	}
	return s.posts.ListAll(ctx, limit)
}

func (s *postService) ListByTag(ctx context.Context, tag string, limit int) ([]*models.Post, error) {
	return s.posts.ListByTag(ctx, tag, limit)
}

func (s *postService) Tags(ctx context.Context) ([]string, error) {
	return s.posts.ListAllTags(ctx)
}

func (s *postService) Search(ctx context.Context, term string, limit int) ([]*models.Post, error) {
	return s.posts.Search(ctx, term, limit)
}

// Update merges fields into a post the session owns
func (s *postService) Update(ctx context.Context, session *auth.Session, id string, upd *models.PostUpdate) (*models.Post, error) {
	if session == nil {
		return nil, auth.ErrAuthRequired
	}
	if errs := validation.ValidatePostUpdate(upd); len(errs) > 0 {
		return nil, &InvalidInputError{Errors: errs}
	}

	if err := s.checkOwnership(ctx, session, id); err != nil {
		return nil, err
	}

	if upd.Content != nil {
		sanitized := validation.SanitizeContent(*upd.Content)
		upd.Content = &sanitized
	}

	post, err := s.posts.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if upd.Published != nil && *upd.Published {
		s.drafts.Clear()
	}
	return post, nil
}

// Delete removes a post the session owns
func (s *postService) Delete(ctx context.Context, session *auth.Session, id string) error {
	if session == nil {
		return auth.ErrAuthRequired
	}
	if err := s.checkOwnership(ctx, session, id); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

// Unpublish soft-deletes a post the session owns
func (s *postService) Unpublish(ctx context.Context, session *auth.Session, id string) error {
	if session == nil {
		return auth.ErrAuthRequired
	}
	if err := s.checkOwnership(ctx, session, id); err != nil {
		return err
	}
	return s.posts.SoftDelete(ctx, id)
}

func (s *postService) checkOwnership(ctx context.Context, session *auth.Session, id string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.AuthorID != session.UserID {
		return ErrNotOwner
	}
	return nil
}
