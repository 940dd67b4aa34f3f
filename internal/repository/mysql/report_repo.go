package mysql

import (
	"context"
	"errors"
	"time"

	"Event_Admin/internal/model"

	"gorm.io/gorm"
)

// ErrReportClosed 举报已不是 pending，终态只允许进入一次
var ErrReportClosed = errors.New("report already closed")

type ReportRepository struct {
	DB *gorm.DB
}

func (r *ReportRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *ReportRepository) FindAll(ctx context.Context) ([]model.Report, error) {
	var list []model.Report
	err := r.db().WithContext(ctx).Find(&list).Error
	return list, err
}

func (r *ReportRepository) FindByID(ctx context.Context, id string) (*model.Report, error) {
	var rep model.Report
	err := r.db().WithContext(ctx).First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// resolve 带 pending 守卫的终态写入；0 行受影响说明已被处理过
func resolve(tx *gorm.DB, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	res := tx.Model(&model.Report{}).
		Where("id = ? AND status = ?", id, model.ReportPending).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReportClosed
	}
	return nil
}

// Resolve 无额外副作用的终态流转（review_event / reject）
func (r *ReportRepository) Resolve(ctx context.Context, id string, fields map[string]any) error {
	return resolve(r.db().WithContext(ctx), id, fields)
}

// ResolveWithUserBan 封禁 + 举报终态 + 通知 + 审计，一个事务内完成；
// 任何一步失败整体回滚，调用方看不到半成品状态
func (r *ReportRepository) ResolveWithUserBan(ctx context.Context, id string, reportFields map[string]any, userID string, userFields map[string]any, note *model.Notification, audit *model.ModerationOutbox) error {
	return r.db().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := &UserRepository{DB: tx}
		if err := users.UpdateFields(ctx, userID, userFields); err != nil {
			return err
		}
		if err := resolve(tx, id, reportFields); err != nil {
			return err
		}
		if note != nil {
			if err := tx.Create(note).Error; err != nil {
				return err
			}
		}
		return tx.Create(audit).Error
	})
}

// ResolveWithEventDelete 删除活动 + 举报终态 + 通知 + 审计，同上
func (r *ReportRepository) ResolveWithEventDelete(ctx context.Context, id string, reportFields map[string]any, eventID string, note *model.Notification, audit *model.ModerationOutbox) error {
	return r.db().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Event{}, "id = ?", eventID).Error; err != nil {
			return err
		}
		if err := resolve(tx, id, reportFields); err != nil {
			return err
		}
		if note != nil {
			if err := tx.Create(note).Error; err != nil {
				return err
			}
		}
		return tx.Create(audit).Error
	})
}
