package model

import "time"

// Notification 站内通知，只创建，不更新也不删除
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Type      string    `gorm:"size:24;not null" json:"type"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	ReportID  string    `gorm:"size:36" json:"report_id,omitempty"`
	EventID   string    `gorm:"size:36" json:"event_id,omitempty"`
	Severity  string    `gorm:"size:16;not null;default:medium" json:"severity"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
