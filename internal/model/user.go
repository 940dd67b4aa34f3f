package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	StatusActive   = "active"
	StatusDisabled = "disabled"
	StatusBanned   = "banned"
)

// User 平台用户，由主站创建；本服务只读取和改状态，从不创建或删除
type User struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Name      string     `gorm:"size:64;not null" json:"name"`
	Email     string     `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Role      string     `gorm:"size:16;not null;default:user" json:"role"`
	Status    string     `gorm:"size:16;not null;default:active;index" json:"status"`
	BannedAt  *time.Time `json:"banned_at,omitempty"`
	BanUntil  *time.Time `json:"ban_until,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
