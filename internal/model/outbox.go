package model

import "time"

// ModerationOutbox 审计事件监控表，和管理动作同事务写入，由 relayer 异步投递
type ModerationOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventID   string `gorm:"size:36;not null"` // 事件流水号，不是活动 id
	ActorID   string `gorm:"size:36;not null"`
	Action    string `gorm:"size:24;not null"` // user_banned / event_deleted / ...
	TargetID  string `gorm:"size:36;not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ModerationOutbox) TableName() string { return "moderation_outbox" }
