package mysql

import (
	"context"
	"time"

	"Event_Admin/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func (r *EventRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *EventRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	var list []model.Event
	err := r.db().WithContext(ctx).Find(&list).Error
	return list, err
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	var ev model.Event
	err := r.db().WithContext(ctx).First(&ev, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	return r.db().WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteByID 硬删除，没有软删标记
func (r *EventRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db().WithContext(ctx).Delete(&model.Event{}, "id = ?", id).Error
}

// DeleteWithAudit 删除活动并在同事务里落一条审计记录
func (r *EventRepository) DeleteWithAudit(ctx context.Context, id string, audit *model.ModerationOutbox) error {
	return r.db().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Event{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
}
