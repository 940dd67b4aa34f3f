package mysql

import (
	"context"

	"Event_Admin/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func (r *OutboxRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

// List 取一批待投递的审计事件
func (r *OutboxRepository) List(ctx context.Context, limit int) ([]model.ModerationOutbox, error) {
	var rows []model.ModerationOutbox
	err := r.db().WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.db().WithContext(ctx).
		Model(&model.ModerationOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.db().WithContext(ctx).
		Model(&model.ModerationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{"retry": gorm.Expr("retry + 1")}).Error
}
