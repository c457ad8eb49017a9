package groups

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/database/repo/accounts"
	"github.com/anoixa/group-gallery/database/repo/groups"
	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/anoixa/group-gallery/utils"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 255
)

// Service 分组服务
type Service struct {
	groups   *groups.Repository
	accounts *accounts.Repository
	gate     *access.Gate
}

// NewService 创建分组服务
func NewService(groupsRepo *groups.Repository, accountsRepo *accounts.Repository, gate *access.Gate) *Service {
	return &Service{groups: groupsRepo, accounts: accountsRepo, gate: gate}
}

// CreateGroup 创建分组，调用者成为所有者并写入成员表
func (s *Service) CreateGroup(ctx context.Context, actorID uint, name, description string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", errs.ErrInvalidInput, maxNameLength)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description must be at most %d characters", errs.ErrInvalidInput, maxDescriptionLength)
	}

	group := &models.Group{Name: name, Description: description, OwnerID: actorID}
	if err := s.groups.WithContext(ctx).CreateGroup(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	utils.LogIfDevf("[Groups] user %d created group %d", actorID, group.ID)
	return group, nil
}

// ListGroups 列出调用者拥有或加入的分组及其相册
func (s *Service) ListGroups(ctx context.Context, actorID uint) ([]*models.Group, error) {
	list, err := s.groups.WithContext(ctx).ListGroupsForUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return list, nil
}

// GetGroup 获取分组详情（成员、相册），需要 ViewGroup 权限
func (s *Service) GetGroup(ctx context.Context, actorID, groupID uint) (*models.Group, error) {
	if err := s.gate.Require(ctx, actorID, access.ActionViewGroup, access.Resource{GroupID: groupID}); err != nil {
		return nil, err
	}
	return s.groups.WithContext(ctx).GetGroupDetail(groupID)
}
