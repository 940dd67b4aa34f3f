package model

import (
	"strings"
	"time"
)

const (
	EventPublic  = "public"
	EventPrivate = "private"
)

// Event 活动文档。Date 兼容两种写法：RFC3339 时间点，或 "start|end" 区间串
type Event struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:200" json:"location"`
	Date        string    `gorm:"size:80" json:"date"`
	Type        string    `gorm:"size:16;not null;default:public;index" json:"type"`
	Category    string    `gorm:"size:64" json:"category"`
	Capacity    int       `gorm:"not null;default:0" json:"capacity"`
	Attendees   int       `gorm:"not null;default:0" json:"attendees"`
	HostID      string    `gorm:"size:36;not null;index" json:"host_id"`
	HostName    string    `gorm:"size:64" json:"host_name"`
	BannerURL   string    `gorm:"size:512" json:"banner_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DateRange 解析 Date 字段。单时间点时 start==end；解析失败返回零值
func (e Event) DateRange() (start, end time.Time) {
	if i := strings.IndexByte(e.Date, '|'); i >= 0 {
		start, _ = time.Parse(time.RFC3339, e.Date[:i])
		end, _ = time.Parse(time.RFC3339, e.Date[i+1:])
		return start, end
	}
	start, _ = time.Parse(time.RFC3339, e.Date)
	return start, start
}
