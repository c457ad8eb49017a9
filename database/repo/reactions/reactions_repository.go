package reactions

import (
	"context"
	"errors"
	"time"

	"github.com/anoixa/group-gallery/database/models"
	"gorm.io/gorm"
)

// Key 表态唯一键；单一类型表态的 Emoji 为空串
type Key struct {
	UserID     uint
	TargetType models.ReactionTargetType
	TargetID   uint
	Emoji      string
}

// Repository 表态仓库
// 所有写操作都是单条语句，不包裹事务：PostgreSQL 中唯一约束冲突会使整个事务失效，
// 冲突重试由调用方完成。
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的表态仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

func (r *Repository) byKey(key Key) *gorm.DB {
	return r.db.Where("user_id = ? AND target_type = ? AND target_id = ? AND emoji = ?",
		key.UserID, key.TargetType, key.TargetID, key.Emoji)
}

// FindByKey 按唯一键查找表态，不存在时返回 nil, nil
func (r *Repository) FindByKey(key Key) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.byKey(key).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

// DeleteByKey 按唯一键删除，返回删除的行数
func (r *Repository) DeleteByKey(key Key) (int64, error) {
	result := r.byKey(key).Delete(&models.Reaction{})
	return result.RowsAffected, result.Error
}

// DeleteByID 仅当类型仍为 expectedType 时删除
func (r *Repository) DeleteByID(id uint, expectedType string) (int64, error) {
	result := r.db.Where("id = ? AND type = ?", id, expectedType).Delete(&models.Reaction{})
	return result.RowsAffected, result.Error
}

// Create 插入表态，唯一约束冲突原样返回给调用方判断
func (r *Repository) Create(reaction *models.Reaction) error {
	return r.db.Create(reaction).Error
}

// SwapType 乐观更新：仅当类型仍为 fromType 时改为 toType 并把 updated_at 写为 at，返回更新的行数
func (r *Repository) SwapType(id uint, fromType, toType string, at time.Time) (int64, error) {
	result := r.db.Model(&models.Reaction{}).
		Where("id = ? AND type = ?", id, fromType).
		Updates(map[string]any{"type": toType, "updated_at": at})
	return result.RowsAffected, result.Error
}

// GetByID 通过ID获取表态
func (r *Repository) GetByID(id uint) (*models.Reaction, error) {
	var reaction models.Reaction
	if err := r.db.First(&reaction, id).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

// ListByTarget 列出对象上的全部表态
func (r *Repository) ListByTarget(targetType models.ReactionTargetType, targetID uint) ([]*models.Reaction, error) {
	var list []*models.Reaction
	err := r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("id asc").
		Find(&list).Error
	return list, err
}

// CountByKey 统计唯一键对应的行数，正常情况下只会是 0 或 1
func (r *Repository) CountByKey(key Key) (int64, error) {
	var count int64
	err := r.byKey(key).Model(&models.Reaction{}).Count(&count).Error
	return count, err
}
