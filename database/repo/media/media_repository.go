package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/internal/errs"
	"gorm.io/gorm"
)

// ErrMediaNotFound 媒体不存在
var ErrMediaNotFound = fmt.Errorf("media %w", errs.ErrNotFound)

// Repository 媒体仓库
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的媒体仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

// CreateMedia 保存媒体元数据
func (r *Repository) CreateMedia(media *models.Media) error {
	return r.db.Create(media).Error
}

// GetMediaByID 通过ID获取媒体
func (r *Repository) GetMediaByID(id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

// GetMediaByStoragePath 通过存储路径获取媒体
func (r *Repository) GetMediaByStoragePath(path string) (*models.Media, error) {
	var media models.Media
	if err := r.db.Where("storage_path = ?", path).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

// GetGroupID 沿 媒体 → 相册 → 分组 解析所属分组；任一环节缺失时 found 为 false
func (r *Repository) GetGroupID(mediaID uint) (groupID uint, found bool, err error) {
	var ids []uint
	err = r.db.Model(&models.Media{}).
		Joins("JOIN albums ON albums.id = media.album_id AND albums.deleted_at IS NULL").
		Where("media.id = ?", mediaID).
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

// ListByAlbum 列出相册中的媒体
func (r *Repository) ListByAlbum(albumID uint) ([]*models.Media, error) {
	var list []*models.Media
	err := r.db.Where("album_id = ?", albumID).Order("created_at desc").Find(&list).Error
	return list, err
}
