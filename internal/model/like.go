package model

// Like 不做 (user_id, post_id) 唯一约束，允许同一用户重复点赞
type Like struct {
	ID     uint64 `gorm:"primaryKey" json:"id"`
	UserID uint64 `gorm:"not null;index:idx_like_user" json:"user"`
	PostID uint64 `gorm:"not null;index:idx_like_post" json:"post"`
}
