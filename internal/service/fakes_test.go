package service

import (
	"context"
	"errors"

	"Ming_Social/internal/model"
)

var errNoToken = errors.New("token not found")

// 内存版仓储，行为对齐 mysql 实现（含唯一索引冲突的模拟）

type fakeUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return model.ErrUserExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == username {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

type fakePostRepo struct {
	posts  []model.Post
	nextID uint64
}

func (f *fakePostRepo) Create(ctx context.Context, post *model.Post) error {
	f.nextID++
	post.ID = f.nextID
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, model.ErrPostNotFound
}

func (f *fakePostRepo) List(ctx context.Context, authorID uint64) ([]model.Post, error) {
	var list []model.Post
	for _, p := range f.posts {
		if authorID == 0 || p.AuthorID == authorID {
			list = append(list, p)
		}
	}
	return list, nil
}

type fakeCommentRepo struct {
	comments []model.Comment
	nextID   uint64
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) List(ctx context.Context, authorID uint64) ([]model.Comment, error) {
	var list []model.Comment
	for _, cm := range f.comments {
		if authorID == 0 || cm.AuthorID == authorID {
			list = append(list, cm)
		}
	}
	return list, nil
}

type fakeLikeRepo struct {
	likes  []model.Like
	nextID uint64
}

func (f *fakeLikeRepo) Create(ctx context.Context, like *model.Like) error {
	f.nextID++
	like.ID = f.nextID
	f.likes = append(f.likes, *like)
	return nil
}

func (f *fakeLikeRepo) List(ctx context.Context, userID uint64) ([]model.Like, error) {
	var list []model.Like
	for _, l := range f.likes {
		if userID == 0 || l.UserID == userID {
			list = append(list, l)
		}
	}
	return list, nil
}

type fakeFollowRepo struct {
	follows []model.Follow
	events  []string // follow / unfollow，对应 outbox 写入
	nextID  uint64
	// existsFn 可覆盖 Exists，用于模拟快路径没看到并发写入的情况
	existsFn func(followerID, followedID uint64) (bool, error)
}

func (f *fakeFollowRepo) Create(ctx context.Context, follow *model.Follow) error {
	// 唯一索引的模拟
	for _, fl := range f.follows {
		if fl.FollowerID == follow.FollowerID && fl.FollowedID == follow.FollowedID {
			return model.ErrAlreadyFollowing
		}
	}
	f.nextID++
	follow.ID = f.nextID
	f.follows = append(f.follows, *follow)
	f.events = append(f.events, "follow")
	return nil
}

func (f *fakeFollowRepo) Exists(ctx context.Context, followerID, followedID uint64) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(followerID, followedID)
	}
	for _, fl := range f.follows {
		if fl.FollowerID == followerID && fl.FollowedID == followedID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFollowRepo) FindByID(ctx context.Context, id uint64) (*model.Follow, error) {
	for i := range f.follows {
		if f.follows[i].ID == id {
			return &f.follows[i], nil
		}
	}
	return nil, model.ErrFollowNotFound
}

func (f *fakeFollowRepo) Delete(ctx context.Context, follow *model.Follow) error {
	for i := range f.follows {
		if f.follows[i].ID == follow.ID {
			f.follows = append(f.follows[:i], f.follows[i+1:]...)
			f.events = append(f.events, "unfollow")
			return nil
		}
	}
	return nil
}

func (f *fakeFollowRepo) List(ctx context.Context, followerID uint64) ([]model.Follow, error) {
	var list []model.Follow
	for _, fl := range f.follows {
		if followerID == 0 || fl.FollowerID == followerID {
			list = append(list, fl)
		}
	}
	return list, nil
}

type fakeTokenRepo struct {
	tokens map[uint64]string
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[uint64]string)}
}

func (f *fakeTokenRepo) Add(userID uint64, token string) error {
	f.tokens[userID] = token
	return nil
}

func (f *fakeTokenRepo) Get(userID uint64) (string, error) {
	if t, ok := f.tokens[userID]; ok {
		return t, nil
	}
	return "", errNoToken
}

func (f *fakeTokenRepo) Extend(userID uint64) error { return nil }

func (f *fakeTokenRepo) Delete(userID uint64) error {
	delete(f.tokens, userID)
	return nil
}
