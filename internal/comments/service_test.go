package comments

import (
	"context"
	"strings"
	"testing"

	"github.com/anoixa/group-gallery/database/dbtest"
	"github.com/anoixa/group-gallery/database/repo/albums"
	"github.com/anoixa/group-gallery/database/repo/comments"
	"github.com/anoixa/group-gallery/database/repo/groups"
	mediarepo "github.com/anoixa/group-gallery/database/repo/media"
	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	db := dbtest.Open(t)
	groupsRepo := groups.NewRepository(db)
	gate := access.NewGate(access.NewMembershipIndex(groupsRepo), groupsRepo, albums.NewRepository(db))
	svc := NewService(comments.NewRepository(db), mediarepo.NewRepository(db), gate)
	ctx := context.Background()

	owner := dbtest.User(t, db, "owner")
	member := dbtest.User(t, db, "member")
	stranger := dbtest.User(t, db, "stranger")
	media := dbtest.Media(t, db, dbtest.Album(t, db, dbtest.Group(t, db, owner, member)), owner)

	c, err := svc.Create(ctx, member.ID, media.ID, "  lovely  ")
	require.NoError(t, err)
	assert.Equal(t, "lovely", c.Content)
	assert.Equal(t, member.ID, c.UserID)

	_, err = svc.Create(ctx, owner.ID, media.ID, "second")
	require.NoError(t, err)

	list, err := svc.List(ctx, owner.ID, media.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "lovely", list[0].Content)
	require.NotNil(t, list[0].User)
	assert.Equal(t, member.ID, list[0].User.ID)

	tests := []struct {
		name    string
		actor   uint
		mediaID uint
		content string
		wantErr error
	}{
		{"empty content", member.ID, media.ID, "   ", errs.ErrInvalidInput},
		{"too long", member.ID, media.ID, strings.Repeat("a", maxContentLength+1), errs.ErrInvalidInput},
		{"non-member", stranger.ID, media.ID, "hi", errs.ErrForbidden},
		{"non-member with empty content", stranger.ID, media.ID, "", errs.ErrForbidden},
		{"missing media", member.ID, 9999, "hi", errs.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.actor, tt.mediaID, tt.content)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = svc.List(ctx, stranger.ID, media.ID)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = svc.List(ctx, member.ID, 9999)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
