package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/docstore"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
)

func newTestCommentRepo() (CommentRepository, *docstore.MemoryStore) {
	store := docstore.NewMemoryStore()
	return NewCommentRepo(store, zerolog.Nop()), store
}

func addComment(t *testing.T, repo CommentRepository, postID, content string) *models.Comment {
	t.Helper()
	comment, err := repo.Create(context.Background(), &models.Comment{
		PostID:     postID,
		AuthorID:   "user-1",
		AuthorName: "Ada",
		Content:    content,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return comment
}

func TestCommentRepo_Create(t *testing.T) {
	repo, _ := newTestCommentRepo()

	comment := addComment(t, repo, "post-1", "First!")

	if comment.ID == "" {
		t.Error("Create() returned empty id")
	}
	if comment.PostID != "post-1" {
		t.Errorf("PostID = %q", comment.PostID)
	}
	if comment.AuthorName != "Ada" {
		t.Errorf("AuthorName = %q", comment.AuthorName)
	}
	if comment.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
}

func TestCommentRepo_GetByID(t *testing.T) {
	repo, _ := newTestCommentRepo()
	ctx := context.Background()

	created := addComment(t, repo, "post-1", "Hello")

	comment, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if comment == nil || comment.Content != "Hello" {
		t.Errorf("GetByID() = %+v", comment)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("GetByID(missing) = %+v, %v, want nil, nil", missing, err)
	}
}

func TestCommentRepo_ListByPost(t *testing.T) {
	repo, _ := newTestCommentRepo()
	ctx := context.Background()

	addComment(t, repo, "post-1", "oldest")
	time.Sleep(2 * time.Millisecond)
	addComment(t, repo, "post-1", "newest")
	addComment(t, repo, "post-2", "elsewhere")

	comments, err := repo.ListByPost(ctx, "post-1")
	if err != nil {
		t.Fatalf("ListByPost() error = %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].Content != "newest" || comments[1].Content != "oldest" {
		t.Errorf("order = [%s, %s], want newest first", comments[0].Content, comments[1].Content)
	}
}

func TestCommentRepo_ListByPost_OrderingFallback(t *testing.T) {
	repo, store := newTestCommentRepo()
	ctx := context.Background()

	store.Orderable = map[string]bool{}

	addComment(t, repo, "post-1", "first")
	time.Sleep(2 * time.Millisecond)
	addComment(t, repo, "post-1", "second")

	comments, err := repo.ListByPost(ctx, "post-1")
	if err != nil {
		t.Fatalf("ListByPost() error = %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].Content != "second" {
		t.Errorf("fallback order starts with %q, want second", comments[0].Content)
	}
}

func TestCommentRepo_ListByPost_Empty(t *testing.T) {
	repo, _ := newTestCommentRepo()

	comments, err := repo.ListByPost(context.Background(), "quiet-post")
	if err != nil {
		t.Fatalf("ListByPost() error = %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("got %d comments, want 0", len(comments))
	}
}

func TestCommentRepo_Delete(t *testing.T) {
	repo, _ := newTestCommentRepo()
	ctx := context.Background()

	comment := addComment(t, repo, "post-1", "remove me")

	if err := repo.Delete(ctx, comment.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, err := repo.GetByID(ctx, comment.ID)
	if err != nil || got != nil {
		t.Errorf("GetByID after delete = %+v, %v, want nil, nil", got, err)
	}
}
