package service

import (
	"context"
	"errors"
	"testing"

	"Ming_Social/internal/model"
)

func TestCommentService_Create(t *testing.T) {
	posts := &fakePostRepo{}
	// 帖子属于用户2，评论者是用户1
	if _, err := NewPostService(posts).Create(context.Background(), 2, "post"); err != nil {
		t.Fatal(err)
	}
	repo := &fakeCommentRepo{}
	svc := NewCommentService(repo, posts)

	comment, err := svc.Create(context.Background(), 1, 1, "nice")
	if err != nil {
		t.Fatalf("Create() err = %v", err)
	}
	if comment.AuthorID != 1 || comment.PostID != 1 {
		t.Errorf("comment = (author=%d post=%d), want (1,1)", comment.AuthorID, comment.PostID)
	}
}

func TestCommentService_Create_PostMissing(t *testing.T) {
	repo := &fakeCommentRepo{}
	svc := NewCommentService(repo, &fakePostRepo{})

	_, err := svc.Create(context.Background(), 1, 99, "nice")
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Fatalf("Create() err = %v, want ErrPostNotFound", err)
	}
	if len(repo.comments) != 0 {
		t.Errorf("rows = %d, want 0", len(repo.comments))
	}
}

func TestCommentService_Create_EmptyContent(t *testing.T) {
	svc := NewCommentService(&fakeCommentRepo{}, &fakePostRepo{})

	_, err := svc.Create(context.Background(), 1, 1, "")
	if !errors.Is(err, model.ErrContentRequired) {
		t.Fatalf("Create() err = %v, want ErrContentRequired", err)
	}
}
