package reactions

import (
	"context"
	"fmt"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/database/repo/comments"
	"github.com/anoixa/group-gallery/database/repo/media"
	"github.com/anoixa/group-gallery/internal/errs"
)

// Target 被表态的对象及其所属分组
type Target struct {
	Kind    models.ReactionTargetType
	ID      uint
	GroupID uint
	Exists  bool
}

// Resolver 把 (类型, ID) 解析为对象所属分组，不做授权
type Resolver struct {
	media    *media.Repository
	comments *comments.Repository
}

// NewResolver 创建对象解析器
func NewResolver(mediaRepo *media.Repository, commentsRepo *comments.Repository) *Resolver {
	return &Resolver{media: mediaRepo, comments: commentsRepo}
}

// Resolve 媒体经 相册 → 分组 解析；评论经 媒体 → 相册 → 分组 解析
func (r *Resolver) Resolve(ctx context.Context, kind models.ReactionTargetType, id uint) (Target, error) {
	target := Target{Kind: kind, ID: id}

	var (
		groupID uint
		found   bool
		err     error
	)
	switch kind {
	case models.ReactionTargetMedia:
		groupID, found, err = r.media.WithContext(ctx).GetGroupID(id)
	case models.ReactionTargetComment:
		groupID, found, err = r.comments.WithContext(ctx).GetGroupID(id)
	default:
		return target, fmt.Errorf("%w: unsupported target type %q", errs.ErrInvalidInput, kind)
	}
	if err != nil {
		return target, fmt.Errorf("failed to resolve %s %d: %w", kind, id, err)
	}

	target.GroupID = groupID
	target.Exists = found
	return target, nil
}
