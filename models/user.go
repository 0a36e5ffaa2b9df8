package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID             string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username       string     `gorm:"type:varchar(100)" json:"username"`
	Email          string     `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	PasswordHash   string     `gorm:"type:varchar(100)" json:"-"`
	EmailConfirmed bool       `gorm:"default:false" json:"emailConfirmed"`
	ConfirmToken   string     `gorm:"type:varchar(50)" json:"-"`
	IsPremium      bool       `gorm:"default:false" json:"isPremium"` // 会员用户才能使用AI功能
	IsTestUser     bool       `gorm:"default:false" json:"isTestUser"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
