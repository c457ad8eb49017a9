// Package access 回答"谁可以在哪个分组做什么"。
//
// 每次调用都直接读取存储的当前状态，不做任何缓存，
// 因此成员关系变化会在下一次请求立即生效。
package access

import (
	"context"
	"fmt"

	"github.com/anoixa/group-gallery/database/repo/groups"
)

// MembershipIndex 成员关系查询
// 分组所有者不一定出现在成员表中，两个条件都需要检查。
type MembershipIndex struct {
	groups *groups.Repository
}

// NewMembershipIndex 创建成员关系查询
func NewMembershipIndex(repo *groups.Repository) *MembershipIndex {
	return &MembershipIndex{groups: repo}
}

// IsMember 用户是否为分组所有者或成员表中的成员
// 分组或用户不存在时返回 false, nil
func (m *MembershipIndex) IsMember(ctx context.Context, userID, groupID uint) (bool, error) {
	repo := m.groups.WithContext(ctx)

	ownerID, found, err := repo.GetOwnerID(groupID)
	if err != nil {
		return false, fmt.Errorf("failed to load group owner: %w", err)
	}
	if !found {
		return false, nil
	}

	listed, err := repo.HasMember(groupID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check group membership: %w", err)
	}
	return ownerID == userID || listed, nil
}

// IsOwner 用户是否为分组所有者
func (m *MembershipIndex) IsOwner(ctx context.Context, userID, groupID uint) (bool, error) {
	ownerID, found, err := m.groups.WithContext(ctx).GetOwnerID(groupID)
	if err != nil {
		return false, fmt.Errorf("failed to load group owner: %w", err)
	}
	return found && ownerID == userID, nil
}
