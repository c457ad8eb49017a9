package access

import (
	"context"
	"fmt"

	"github.com/anoixa/group-gallery/database/repo/albums"
	"github.com/anoixa/group-gallery/database/repo/groups"
	"github.com/anoixa/group-gallery/internal/errs"
)

// Action 受保护的操作
type Action string

const (
	ActionCreateAlbum  Action = "create_album"
	ActionUploadMedia  Action = "upload_media"
	ActionInviteMember Action = "invite_member"
	ActionViewGroup    Action = "view_group"
	ActionViewAlbum    Action = "view_album"
)

// Resource 操作对象；AlbumID 仅在相册级操作时使用
type Resource struct {
	GroupID uint
	AlbumID uint
}

// Decision 授权结果
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow 放行
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny 拒绝并附带原因
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

const (
	reasonNotMember = "you are not a member of this group"
	reasonNotOwner  = "only the group owner can invite members"
)

// Gate 授权门
// 先确认资源存在（不存在返回 ErrNotFound），再按策略判断，因此 404 优先于 403。
type Gate struct {
	index  *MembershipIndex
	groups *groups.Repository
	albums *albums.Repository
}

// NewGate 创建授权门
func NewGate(index *MembershipIndex, groupsRepo *groups.Repository, albumsRepo *albums.Repository) *Gate {
	return &Gate{index: index, groups: groupsRepo, albums: albumsRepo}
}

// Authorize 判断 actor 能否对 resource 执行 action
func (g *Gate) Authorize(ctx context.Context, actorID uint, action Action, res Resource) (Decision, error) {
	if err := g.resolve(ctx, action, res); err != nil {
		return Decision{}, err
	}

	switch action {
	case ActionInviteMember:
		owner, err := g.index.IsOwner(ctx, actorID, res.GroupID)
		if err != nil {
			return Decision{}, err
		}
		if !owner {
			return Deny(reasonNotOwner), nil
		}
		return Allow(), nil

	case ActionCreateAlbum, ActionUploadMedia, ActionViewGroup, ActionViewAlbum:
		member, err := g.index.IsMember(ctx, actorID, res.GroupID)
		if err != nil {
			return Decision{}, err
		}
		if !member {
			return Deny(reasonNotMember), nil
		}
		return Allow(), nil
	}

	return Decision{}, fmt.Errorf("%w: unknown action %q", errs.ErrInvalidInput, action)
}

// Require 与 Authorize 相同，但把拒绝转换为 ErrForbidden
func (g *Gate) Require(ctx context.Context, actorID uint, action Action, res Resource) error {
	decision, err := g.Authorize(ctx, actorID, action, res)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", errs.ErrForbidden, decision.Reason)
	}
	return nil
}

// resolve 确认分组存在；相册级操作还要求相册属于该分组
func (g *Gate) resolve(ctx context.Context, action Action, res Resource) error {
	_, found, err := g.groups.WithContext(ctx).GetOwnerID(res.GroupID)
	if err != nil {
		return fmt.Errorf("failed to load group: %w", err)
	}
	if !found {
		return groups.ErrGroupNotFound
	}

	if action != ActionUploadMedia && action != ActionViewAlbum {
		return nil
	}

	groupID, found, err := g.albums.WithContext(ctx).GetGroupID(res.AlbumID)
	if err != nil {
		return fmt.Errorf("failed to load album: %w", err)
	}
	if !found || groupID != res.GroupID {
		return albums.ErrAlbumNotFound
	}
	return nil
}
