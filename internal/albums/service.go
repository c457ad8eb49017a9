package albums

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/database/repo/albums"
	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/anoixa/group-gallery/utils"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 255
)

// Service 相册服务层
type Service struct {
	repo *albums.Repository
	gate *access.Gate
}

// NewService 创建新的相册服务
func NewService(repo *albums.Repository, gate *access.Gate) *Service {
	return &Service{repo: repo, gate: gate}
}

// CreateAlbum 在分组下创建相册，需要分组成员身份
func (s *Service) CreateAlbum(ctx context.Context, actorID, groupID uint, title, description string) (*models.Album, error) {
	if err := s.gate.Require(ctx, actorID, access.ActionCreateAlbum, access.Resource{GroupID: groupID}); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title must be at most %d characters", errs.ErrInvalidInput, maxTitleLength)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description must be at most %d characters", errs.ErrInvalidInput, maxDescriptionLength)
	}

	album := &models.Album{GroupID: groupID, Title: title, Description: description}
	if err := s.repo.WithContext(ctx).CreateAlbum(album); err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	utils.LogIfDevf("[Albums] user %d created album %d in group %d", actorID, album.ID, groupID)
	return album, nil
}

// GetAlbum 获取相册及其媒体
func (s *Service) GetAlbum(ctx context.Context, actorID, groupID, albumID uint) (*models.Album, error) {
	if err := s.gate.Require(ctx, actorID, access.ActionViewAlbum, access.Resource{GroupID: groupID, AlbumID: albumID}); err != nil {
		return nil, err
	}
	return s.repo.WithContext(ctx).GetAlbumWithMedia(albumID)
}
