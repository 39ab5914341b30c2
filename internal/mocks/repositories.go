package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/readtime"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/slug"
	"github.com/google/uuid"
)

// MockPostRepository is a mock implementation of repository.PostRepository
type MockPostRepository struct {
	mu    sync.Mutex
	Posts map[string]*models.Post

	CreateError error
	QueryError  error
	UpdateError error
	DeleteError error

	CreateCalls int
	SearchCalls int
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts: make(map[string]*models.Post),
	}
}

func (m *MockPostRepository) Create(ctx context.Context, input *models.PostInput) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateError != nil {
		return nil, m.CreateError
	}

	s := slug.Make(input.Title)
	for _, p := range m.Posts {
		if p.Slug == s {
			s = fmt.Sprintf("%s-%d", s, time.Now().UnixMilli())
			break
		}
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC()
	post := &models.Post{
		ID:         uuid.New().String(),
		Title:      input.Title,
		Content:    input.Content,
		Excerpt:    input.Excerpt,
		Slug:       s,
		AuthorID:   input.AuthorID,
		Published:  input.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
		Tags:       tags,
		CoverImage: input.CoverImage,
		ReadTime:   readtime.Estimate(input.Content),
	}
	if input.Published {
		post.PublishedAt = &now
	}
	m.Posts[post.ID] = post
	return clonePost(post), nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	return clonePost(m.Posts[id]), nil
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, s string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	for _, p := range m.Posts {
		if p.Slug == s {
			return clonePost(p), nil
		}
	}
	return nil, nil
}

func (m *MockPostRepository) ListPublished(ctx context.Context, limit int) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var posts []*models.Post
	for _, p := range m.Posts {
		if p.Published {
			posts = append(posts, clonePost(p))
		}
	}
	sortNewestFirst(posts)
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var posts []*models.Post
	for _, p := range m.Posts {
		if p.AuthorID == authorID {
			posts = append(posts, clonePost(p))
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[j].CreatedAt.Before(posts[i].CreatedAt)
	})
	return posts, nil
}

func (m *MockPostRepository) ListAll(ctx context.Context, limit int) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var posts []*models.Post
	for _, p := range m.Posts {
		posts = append(posts, clonePost(p))
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[j].CreatedAt.Before(posts[i].CreatedAt)
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (m *MockPostRepository) ListByTag(ctx context.Context, tag string, limit int) ([]*models.Post, error) {
	published, err := m.ListPublished(ctx, 0)
	if err != nil {
		return nil, err
	}
	var posts []*models.Post
	for _, p := range published {
		if p.HasTag(tag) {
			posts = append(posts, p)
		}
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (m *MockPostRepository) ListAllTags(ctx context.Context) ([]string, error) {
	published, err := m.ListPublished(ctx, 0)
	if err != nil {
		return []string{}, nil
	}
	seen := make(map[string]bool)
	var tags []string
	for _, p := range published {
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

func (m *MockPostRepository) Update(ctx context.Context, id string, upd *models.PostUpdate) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	post, ok := m.Posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s not found", id)
	}

	now := time.Now().UTC()
	if upd.Title != nil {
		post.Title = *upd.Title
		post.Slug = slug.Make(*upd.Title)
	}
	if upd.Content != nil {
		post.Content = *upd.Content
		post.ReadTime = readtime.Estimate(*upd.Content)
	}
	if upd.Excerpt != nil {
		post.Excerpt = *upd.Excerpt
	}
	if upd.Tags != nil {
		post.Tags = upd.Tags
	}
	if upd.CoverImage != nil {
		post.CoverImage = *upd.CoverImage
	}
	if upd.Published != nil {
		if *upd.Published && !post.Published {
			post.PublishedAt = &now
		}
		post.Published = *upd.Published
	}
	post.UpdatedAt = now
	return clonePost(post), nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Posts, id)
	return nil
}

func (m *MockPostRepository) SoftDelete(ctx context.Context, id string) error {
	published := false
	_, err := m.Update(ctx, id, &models.PostUpdate{Published: &published})
	return err
}

func (m *MockPostRepository) Search(ctx context.Context, term string, limit int) ([]*models.Post, error) {
	m.mu.Lock()
	m.SearchCalls++
	m.mu.Unlock()

	posts, err := m.ListPublished(ctx, 0)
	if err != nil {
		return nil, err
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
		if postMatches(p, term) {
			filtered = append(filtered, p)
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// MockCommentRepository is a mock implementation of repository.CommentRepository
type MockCommentRepository struct {
	mu       sync.Mutex
	Comments map[string]*models.Comment

	CreateError error
	QueryError  error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	stored := *comment
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now().UTC()
	m.Comments[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var comments []*models.Comment
	for _, c := range m.Comments {
		if c.PostID == postID {
			out := *c
			comments = append(comments, &out)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[j].CreatedAt.Before(comments[i].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Comments, id)
	return nil
}

func clonePost(p *models.Post) *models.Post {
	if p == nil {
		return nil
	}
	out := *p
	out.Tags = append([]string(nil), p.Tags...)
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		out.PublishedAt = &t
	}
	return &out
}

func sortNewestFirst(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		di, dj := posts[i].CreatedAt, posts[j].CreatedAt
		if posts[i].PublishedAt != nil {
			di = *posts[i].PublishedAt
		}
		if posts[j].PublishedAt != nil {
			dj = *posts[j].PublishedAt
		}
		return dj.Before(di)
	})
}

func postMatches(p *models.Post, term string) bool {
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
