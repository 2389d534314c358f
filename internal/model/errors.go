package model

import "errors"

// 业务错误，handler 按 errors.Is 映射为 HTTP 状态码
var (
	ErrAlreadyFollowing   = errors.New("Already following")
	ErrSelfFollow         = errors.New("cannot follow self")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrFollowNotFound     = errors.New("follow not found")
	ErrContentRequired    = errors.New("content required")
	ErrNoPermission       = errors.New("no permission")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
