package mysql

import (
	"context"

	"Event_Admin/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func (r *NotificationRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

// Create 通知只写不读
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db().WithContext(ctx).Create(n).Error
}
