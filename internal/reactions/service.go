package reactions

import (
	"context"
	"fmt"
	"strings"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/database/repo/accounts"
	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/errs"
)

// ToggleRequest 切换请求；Emoji 非空时走 emoji 模式，否则按 Type 走单一类型模式
type ToggleRequest struct {
	Emoji string
	Type  string
}

// Service 表态服务：解析对象、校验分组成员身份、执行切换
type Service struct {
	resolver *Resolver
	engine   *Engine
	index    *access.MembershipIndex
	accounts *accounts.Repository
}

// NewService 创建表态服务
func NewService(resolver *Resolver, engine *Engine, index *access.MembershipIndex, accountsRepo *accounts.Repository) *Service {
	return &Service{resolver: resolver, engine: engine, index: index, accounts: accountsRepo}
}

// Toggle 切换 actor 在对象上的表态
// 顺序：actor 不存在 404，对象不存在 404，非成员 403，最后才校验请求体。
func (s *Service) Toggle(ctx context.Context, actorID uint, kind models.ReactionTargetType, targetID uint, req ToggleRequest) (ToggleResult, error) {
	// 令牌仍有效但用户已被删除
	if _, err := s.accounts.WithContext(ctx).GetUserByID(actorID); err != nil {
		return ToggleResult{}, err
	}

	target, err := s.resolver.Resolve(ctx, kind, targetID)
	if err != nil {
		return ToggleResult{}, err
	}
	if !target.Exists {
		return ToggleResult{}, fmt.Errorf("%w: %s %d", errs.ErrNotFound, strings.ToLower(string(kind)), targetID)
	}

	member, err := s.index.IsMember(ctx, actorID, target.GroupID)
	if err != nil {
		return ToggleResult{}, err
	}
	if !member {
		return ToggleResult{}, fmt.Errorf("%w: you are not a member of this group", errs.ErrForbidden)
	}

	key, err := keyFor(req)
	if err != nil {
		return ToggleResult{}, err
	}
	return s.engine.Toggle(ctx, actorID, target, key)
}

// ListReactions 列出对象上的表态，同样要求成员身份
func (s *Service) ListReactions(ctx context.Context, actorID uint, kind models.ReactionTargetType, targetID uint) ([]*models.Reaction, error) {
	target, err := s.resolver.Resolve(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	if !target.Exists {
		return nil, fmt.Errorf("%w: %s %d", errs.ErrNotFound, strings.ToLower(string(kind)), targetID)
	}

	member, err := s.index.IsMember(ctx, actorID, target.GroupID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: you are not a member of this group", errs.ErrForbidden)
	}

	return s.engine.repo.WithContext(ctx).ListByTarget(kind, targetID)
}

func keyFor(req ToggleRequest) (Key, error) {
	if strings.TrimSpace(req.Emoji) != "" {
		return EmojiKey(req.Emoji), nil
	}
	if strings.TrimSpace(req.Type) != "" {
		return SingleKey(req.Type), nil
	}
	return Key{}, fmt.Errorf("%w: emoji or type is required", errs.ErrInvalidInput)
}
