package model

import "time"

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:32;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:64;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// UserProfile 每个用户一条，首次访问时懒创建
type UserProfile struct {
	ID             uint64 `gorm:"primaryKey" json:"id"`
	UserID         uint64 `gorm:"uniqueIndex;not null" json:"user"`
	Bio            string `gorm:"type:text" json:"bio"`
	ProfilePicture string `gorm:"size:255" json:"profile_picture"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
