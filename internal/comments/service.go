// Package comments 媒体评论
package comments

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/database/repo/comments"
	mediarepo "github.com/anoixa/group-gallery/database/repo/media"
	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/anoixa/group-gallery/utils"
)

const maxContentLength = 2000

// Service 评论服务
// 每次读写都按媒体所属分组重新校验成员身份。
type Service struct {
	repo  *comments.Repository
	media *mediarepo.Repository
	gate  *access.Gate
}

// NewService 创建评论服务
func NewService(repo *comments.Repository, mediaRepo *mediarepo.Repository, gate *access.Gate) *Service {
	return &Service{repo: repo, media: mediaRepo, gate: gate}
}

// List 按时间顺序列出媒体下的评论
func (s *Service) List(ctx context.Context, actorID, mediaID uint) ([]*models.Comment, error) {
	if err := s.authorize(ctx, actorID, mediaID); err != nil {
		return nil, err
	}
	return s.repo.WithContext(ctx).ListByMedia(mediaID)
}

// Create 发表评论
func (s *Service) Create(ctx context.Context, actorID, mediaID uint, content string) (*models.Comment, error) {
	if err := s.authorize(ctx, actorID, mediaID); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", errs.ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return nil, fmt.Errorf("%w: content must be at most %d characters", errs.ErrInvalidInput, maxContentLength)
	}

	comment := &models.Comment{Content: content, MediaID: mediaID, UserID: actorID}
	if err := s.repo.WithContext(ctx).CreateComment(comment); err != nil {
		return nil, err
	}

	utils.LogIfDevf("[Comments] user %d commented on media %d", actorID, mediaID)
	return comment, nil
}

func (s *Service) authorize(ctx context.Context, actorID, mediaID uint) error {
	groupID, found, err := s.media.WithContext(ctx).GetGroupID(mediaID)
	if err != nil {
		return err
	}
	if !found {
		return mediarepo.ErrMediaNotFound
	}
	return s.gate.Require(ctx, actorID, access.ActionViewGroup, access.Resource{GroupID: groupID})
}
