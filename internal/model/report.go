package model

import "time"

const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
	ReportRejected = "rejected"

	ActionReviewEvent  = "review_event"
	ActionUserBanned   = "user_banned"
	ActionEventDeleted = "event_deleted"
	ActionNoAction     = "no_action"
)

// Report 举报文档，由主站以 pending 创建；本服务只做一次性的终态流转
type Report struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Reason        string     `gorm:"size:200;not null" json:"reason"`
	Description   string     `gorm:"type:text" json:"description"`
	EvidenceURL   string     `gorm:"size:512" json:"evidence_url,omitempty"`
	EventID       string     `gorm:"size:36;not null;index" json:"event_id"`
	EventTitle    string     `gorm:"size:200" json:"event_title"`
	EventHostID   string     `gorm:"size:36" json:"event_host_id"`
	ReporterID    string     `gorm:"size:36;not null" json:"reporter_id"`
	ReporterName  string     `gorm:"size:64" json:"reporter_name"`
	Status        string     `gorm:"size:16;not null;default:pending;index" json:"status"`
	Action        string     `gorm:"size:24" json:"action,omitempty"`
	ActionTakenAt *time.Time `json:"action_taken_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Report) TableName() string { return "reports" }
