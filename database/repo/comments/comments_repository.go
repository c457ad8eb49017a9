package comments

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/internal/errs"
	"gorm.io/gorm"
)

// ErrCommentNotFound 评论不存在
var ErrCommentNotFound = fmt.Errorf("comment %w", errs.ErrNotFound)

// Repository 评论仓库
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的评论仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

// CreateComment 创建评论并回填作者
func (r *Repository) CreateComment(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	var author models.User
	if err := r.db.First(&author, comment.UserID).Error; err == nil {
		comment.User = &author
	}
	return nil
}

// GetCommentByID 通过ID获取评论
func (r *Repository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// ListByMedia 列出媒体下的评论，按时间正序
func (r *Repository) ListByMedia(mediaID uint) ([]*models.Comment, error) {
	var list []*models.Comment
	err := r.db.Preload("User").
		Where("media_id = ?", mediaID).
		Order("created_at asc, id asc").
		Find(&list).Error
	return list, err
}

// GetGroupID 沿 评论 → 媒体 → 相册 → 分组 解析所属分组
func (r *Repository) GetGroupID(commentID uint) (groupID uint, found bool, err error) {
	var ids []uint
	err = r.db.Model(&models.Comment{}).
		Joins("JOIN media ON media.id = comments.media_id AND media.deleted_at IS NULL").
		Joins("JOIN albums ON albums.id = media.album_id AND albums.deleted_at IS NULL").
		Where("comments.id = ?", commentID).
		Limit(1).
		Pluck("albums.group_id", &ids).Error
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}
