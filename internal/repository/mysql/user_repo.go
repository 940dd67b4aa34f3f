package mysql

import (
	"context"
	"time"

	"Event_Admin/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

// FindAll 拉全量快照，过滤和分页都在服务层内存里做
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	var list []model.User
	err := r.db().WithContext(ctx).Find(&list).Error
	return list, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db().WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db().WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateFields 合并写入给定字段，总是顺带刷新 updated_at
func (r *UserRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	return r.db().WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}
