package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/docstore"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/readtime"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/slug"
	"github.com/rs/zerolog"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	store docstore.Store
	log   zerolog.Logger
}

// NewPostRepo creates a new post repository
func NewPostRepo(store docstore.Store, log zerolog.Logger) PostRepository {
	return &postRepo{
		store: store,
		log:   log.With().Str("component", "post_repo").Logger(),
	}
}

// Create inserts a new post. The slug is derived from the title; when a
// post with that slug already exists a millisecond timestamp suffix keeps
// it unique. A failed uniqueness probe fails the create rather than
// risking a colliding slug. The probe is a read-then-write check, not
// transactionally safe against concurrent creates with the same title.
func (r *postRepo) Create(ctx context.Context, input *models.PostInput) (*models.Post, error) {
	s := slug.Make(input.Title)

	existing, err := r.GetBySlug(ctx, s)
	if err != nil {
		return nil, &RepositoryError{Op: "create post slug check", Err: err}
	}
	if existing != nil {
		s = fmt.Sprintf("%s-%d", s, time.Now().UnixMilli())
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	data := map[string]interface{}{
		"title":      input.Title,
		"content":    input.Content,
		"excerpt":    input.Excerpt,
		"slug":       s,
		"authorId":   input.AuthorID,
		"published":  input.Published,
		"tags":       tags,
		"coverImage": input.CoverImage,
		"readTime":   readtime.Estimate(input.Content),
		"createdAt":  now,
		"updatedAt":  now,
	}
	if input.Published {
		data["publishedAt"] = now
	} else {
		data["publishedAt"] = nil
	}

	id, err := r.store.Add(ctx, postsCollection, data)
	if err != nil {
		return nil, &RepositoryError{Op: "create post", Err: err}
	}

	// Read back the stored record so the caller gets exactly what the
	// store holds.
	doc, err := r.store.Get(ctx, postsCollection, id)
	if err != nil {
		return nil, &RepositoryError{Op: "create post read-back", Err: err}
	}

	return MapPost(doc)
}

// GetByID returns the post or (nil, nil) when the id does not exist
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	doc, err := r.store.Get(ctx, postsCollection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post by id: %w", err)
	}
	return MapPost(doc)
}

// GetBySlug queries by slug equality and takes at most one match.
// A miss returns (nil, nil).
func (r *postRepo) GetBySlug(ctx context.Context, s string) (*models.Post, error) {
	docs, err := r.store.Query(ctx, postsCollection, docstore.Query{
		Filters: []docstore.Filter{{Field: "slug", Op: docstore.OpEqual, Value: s}},
		Limit:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return MapPost(&docs[0])
}

// ListPublished returns published posts ordered by publish date
// descending, falling back to createdAt for posts that never carried a
// publishedAt. When the store cannot satisfy the ordering the same filter
// is retried unordered and sorted here; only a failure of both attempts
// surfaces an error.
func (r *postRepo) ListPublished(ctx context.Context, limit int) ([]*models.Post, error) {
	q := docstore.Query{
		Filters: []docstore.Filter{{Field: "published", Op: docstore.OpEqual, Value: true}},
		OrderBy: "publishedAt",
		Limit:   limit,
	}

	docs, err := r.store.Query(ctx, postsCollection, q)
	if err != nil {
		r.log.Warn().Err(err).Msg("Ordered published query failed, retrying without ordering")

		q.OrderBy = ""
		docs, fallbackErr := r.store.Query(ctx, postsCollection, q)
		if fallbackErr != nil {
			return nil, fmt.Errorf("list published posts: %w", err)
		}
		posts, mapErr := r.mapDocs(docs)
		if mapErr != nil {
			return nil, mapErr
		}
		sortByPublishDate(posts)
		return posts, nil
	}

	return r.mapDocs(docs)
}

// ListByAuthor returns all posts, drafts included, owned by the author
func (r *postRepo) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	docs, err := r.store.Query(ctx, postsCollection, docstore.Query{
		Filters: []docstore.Filter{{Field: "authorId", Op: docstore.OpEqual, Value: authorID}},
		OrderBy: "createdAt",
	})
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	return r.mapDocs(docs)
}

// ListAll returns every post, drafts included, newest first
func (r *postRepo) ListAll(ctx context.Context, limit int) ([]*models.Post, error) {
	docs, err := r.store.Query(ctx, postsCollection, docstore.Query{
		OrderBy: "createdAt",
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list all posts: %w", err)
	}
	return r.mapDocs(docs)
}

// ListByTag returns published posts carrying the given tag. On query
// failure it falls back to the full published set filtered here,
// preserving the descending publish-date order.
func (r *postRepo) ListByTag(ctx context.Context, tag string, limit int) ([]*models.Post, error) {
	docs, err := r.store.Query(ctx, postsCollection, docstore.Query{
		Filters: []docstore.Filter{
			{Field: "published", Op: docstore.OpEqual, Value: true},
			{Field: "tags", Op: docstore.OpContains, Value: tag},
		},
		OrderBy: "publishedAt",
		Limit:   limit,
	})
	if err != nil {
		r.log.Warn().Err(err).Str("tag", tag).Msg("Tag query failed, filtering client-side")

		all, fallbackErr := r.ListPublished(ctx, 0)
		if fallbackErr != nil {
			return nil, fmt.Errorf("list posts by tag: %w", err)
		}
		var filtered []*models.Post
		for _, p := range all {
			if p.HasTag(tag) {
				filtered = append(filtered, p)
			}
		}
		sortByPublishDate(filtered)
		if limit > 0 && len(filtered) > limit {
			filtered = filtered[:limit]
		}
		return filtered, nil
	}

	return r.mapDocs(docs)
}

// ListAllTags returns the deduplicated, alphabetically sorted tags across
// all published posts. Failures degrade to an empty list.
func (r *postRepo) ListAllTags(ctx context.Context) ([]string, error) {
	posts, err := r.ListPublished(ctx, 0)
	if err != nil {
		r.log.Warn().Err(err).Msg("Tag listing degraded to empty")
		return []string{}, nil
	}

	seen := make(map[string]bool)
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// Update merges the given fields. A new title regenerates the slug, new
// content recomputes the read time, and a false-to-true published
// transition stamps publishedAt. updatedAt is always stamped.
func (r *postRepo) Update(ctx context.Context, id string, upd *models.PostUpdate) (*models.Post, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, &RepositoryError{Op: "update post", Err: err}
	}
	if current == nil {
		return nil, &RepositoryError{Op: "update post", Err: fmt.Errorf("post %s not found", id)}
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{
		"updatedAt": now,
	}
	if upd.Title != nil {
		fields["title"] = *upd.Title
		fields["slug"] = slug.Make(*upd.Title)
	}
	if upd.Content != nil {
		fields["content"] = *upd.Content
		fields["readTime"] = readtime.Estimate(*upd.Content)
	}
	if upd.Excerpt != nil {
		fields["excerpt"] = *upd.Excerpt
	}
	if upd.Tags != nil {
		fields["tags"] = upd.Tags
	}
	if upd.CoverImage != nil {
		fields["coverImage"] = *upd.CoverImage
	}
	if upd.Published != nil {
		fields["published"] = *upd.Published
		if *upd.Published && !current.Published {
			fields["publishedAt"] = now
		}
	}

	if err := r.store.Update(ctx, postsCollection, id, fields); err != nil {
		return nil, &RepositoryError{Op: "update post", Err: err}
	}

	doc, err := r.store.Get(ctx, postsCollection, id)
	if err != nil {
		return nil, &RepositoryError{Op: "update post read-back", Err: err}
	}
	return MapPost(doc)
}

// Delete removes the record permanently
func (r *postRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, postsCollection, id); err != nil {
		return &RepositoryError{Op: "delete post", Err: err}
	}
	return nil
}

// SoftDelete forces published to false, retaining the record
func (r *postRepo) SoftDelete(ctx context.Context, id string) error {
	published := false
	_, err := r.Update(ctx, id, &models.PostUpdate{Published: &published})
	return err
}

// Search retains published posts where the term is a case-insensitive
// substring of the title, content, excerpt or any tag. A blank term
// returns the full published set (optionally truncated), not an empty
// result.
func (r *postRepo) Search(ctx context.Context, term string, limit int) ([]*models.Post, error) {
	posts, err := r.ListPublished(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		if limit > 0 && len(posts) > limit {
			return posts[:limit], nil
		}
		return posts, nil
	}

	var filtered []*models.Post
	for _, p := range posts {
		if matchesTerm(p, term) {
			filtered = append(filtered, p)
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func matchesTerm(p *models.Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Content), term) ||
		strings.Contains(strings.ToLower(p.Excerpt), term) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

func (r *postRepo) mapDocs(docs []docstore.Document) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(docs))
	for i := range docs {
		p, err := MapPost(&docs[i])
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// sortByPublishDate orders newest first, using createdAt for posts that
// never carried a publishedAt
func sortByPublishDate(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return publishDate(posts[j]).Before(publishDate(posts[i]))
	})
}

func publishDate(p *models.Post) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.CreatedAt
}
