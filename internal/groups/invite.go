package groups

import (
	"context"
	"fmt"
	"strings"

	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/anoixa/group-gallery/utils"
)

// Invite 所有者按邮箱把已注册用户加入分组
// 先鉴权再校验邮箱；被邀请者已是成员时静默成功，邮箱未注册返回 ErrNotFound。
func (s *Service) Invite(ctx context.Context, actorID, groupID uint, inviteeEmail string) error {
	if err := s.gate.Require(ctx, actorID, access.ActionInviteMember, access.Resource{GroupID: groupID}); err != nil {
		return err
	}

	email := strings.TrimSpace(inviteeEmail)
	if email == "" {
		return fmt.Errorf("%w: email is required", errs.ErrInvalidInput)
	}

	invitee, err := s.accounts.WithContext(ctx).GetUserByEmail(email)
	if err != nil {
		return err
	}

	added, err := s.groups.WithContext(ctx).AddMember(groupID, invitee.ID)
	if err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}

	if added {
		utils.LogIfDevf("[Groups] user %d invited %s into group %d", actorID, utils.SanitizeLogEmail(email), groupID)
	}
	return nil
}
