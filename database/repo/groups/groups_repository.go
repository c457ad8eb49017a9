package groups

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/internal/errs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrGroupNotFound 分组不存在
var ErrGroupNotFound = fmt.Errorf("group %w", errs.ErrNotFound)

// Repository 分组仓库，负责分组与成员关系的读写
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的分组仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

// CreateGroup 创建分组并把所有者写入成员表
func (r *Repository) CreateGroup(group *models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.GroupMember{GroupID: group.ID, UserID: group.OwnerID}).Error
	})
}

// GetGroupByID 获取分组（不含关联）
func (r *Repository) GetGroupByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// GetGroupDetail 获取分组及其所有者、成员、相册
func (r *Repository) GetGroupDetail(id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.
		Preload("Owner").
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("users.id") }).
		Preload("Albums", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// GetOwnerID 返回分组所有者；分组不存在时 found 为 false
func (r *Repository) GetOwnerID(groupID uint) (ownerID uint, found bool, err error) {
	var ids []uint
	if err := r.db.Model(&models.Group{}).Where("id = ?", groupID).Limit(1).Pluck("owner_id", &ids).Error; err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// HasMember 检查成员表中是否存在 (groupID, userID)
func (r *Repository) HasMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddMember 添加成员，已存在时静默成功
// added 表示本次调用是否实际插入了新行
func (r *Repository) AddMember(groupID, userID uint) (added bool, err error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.GroupMember{GroupID: groupID, UserID: userID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListGroupsForUser 列出用户拥有或加入的分组，附带相册
func (r *Repository) ListGroupsForUser(userID uint) ([]*models.Group, error) {
	var groups []*models.Group
	memberOf := r.db.Model(&models.GroupMember{}).Select("group_id").Where("user_id = ?", userID)

	err := r.db.
		Where("owner_id = ? OR id IN (?)", userID, memberOf).
		Preload("Albums", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Order("created_at desc").
		Find(&groups).Error
	return groups, err
}

// CountMembers 统计成员表中的行数
func (r *Repository) CountMembers(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}
