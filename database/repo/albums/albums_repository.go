package albums

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/internal/errs"
	"gorm.io/gorm"
)

// ErrAlbumNotFound 相册不存在
var ErrAlbumNotFound = fmt.Errorf("album %w", errs.ErrNotFound)

// Repository 相册仓库 - 封装所有相册相关的数据库操作
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的相册仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

// CreateAlbum 创建相册
func (r *Repository) CreateAlbum(album *models.Album) error {
	return r.db.Create(album).Error
}

// GetAlbumByID 通过ID获取相册
func (r *Repository) GetAlbumByID(albumID uint) (*models.Album, error) {
	var album models.Album
	if err := r.db.First(&album, albumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}
	return &album, nil
}

// GetAlbumWithMedia 获取相册及其媒体，媒体按上传时间倒序
func (r *Repository) GetAlbumWithMedia(albumID uint) (*models.Album, error) {
	var album models.Album
	err := r.db.
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		First(&album, albumID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}
	return &album, nil
}

// GetGroupID 返回相册所属分组；相册不存在时 found 为 false
func (r *Repository) GetGroupID(albumID uint) (groupID uint, found bool, err error) {
	var ids []uint
	if err := r.db.Model(&models.Album{}).Where("id = ?", albumID).Limit(1).Pluck("group_id", &ids).Error; err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// ListByGroup 列出分组下的相册
func (r *Repository) ListByGroup(groupID uint) ([]*models.Album, error) {
	var albums []*models.Album
	err := r.db.Where("group_id = ?", groupID).Order("created_at desc").Find(&albums).Error
	return albums, err
}
