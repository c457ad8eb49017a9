package albums

import (
	"context"
	"strings"
	"testing"

	"github.com/anoixa/group-gallery/database/dbtest"
	"github.com/anoixa/group-gallery/database/repo/albums"
	"github.com/anoixa/group-gallery/database/repo/groups"
	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(db *gorm.DB) *Service {
	groupsRepo := groups.NewRepository(db)
	albumsRepo := albums.NewRepository(db)
	gate := access.NewGate(access.NewMembershipIndex(groupsRepo), groupsRepo, albumsRepo)
	return NewService(albumsRepo, gate)
}

func TestService_CreateAlbum(t *testing.T) {
	db := dbtest.Open(t)
	svc := newService(db)
	ctx := context.Background()
	owner := dbtest.User(t, db, "owner")
	member := dbtest.User(t, db, "member")
	stranger := dbtest.User(t, db, "stranger")
	group := dbtest.Group(t, db, owner, member)

	tests := []struct {
		name    string
		actor   uint
		groupID uint
		title   string
		wantErr error
	}{
		{"member creates", member.ID, group.ID, "Trip", nil},
		{"owner creates", owner.ID, group.ID, "Party", nil},
		{"stranger forbidden", stranger.ID, group.ID, "Nope", errs.ErrForbidden},
		{"blank title", member.ID, group.ID, "  ", errs.ErrInvalidInput},
		{"title too long", member.ID, group.ID, strings.Repeat("a", maxTitleLength+1), errs.ErrInvalidInput},
		{"missing group", member.ID, 9999, "Trip", errs.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			album, err := svc.CreateAlbum(ctx, tt.actor, tt.groupID, tt.title, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, album.Title)
			assert.Equal(t, tt.groupID, album.GroupID)
		})
	}
}

func TestService_GetAlbum(t *testing.T) {
	db := dbtest.Open(t)
	svc := newService(db)
	ctx := context.Background()
	owner := dbtest.User(t, db, "owner")
	stranger := dbtest.User(t, db, "stranger")
	group := dbtest.Group(t, db, owner)
	album := dbtest.Album(t, db, group)
	dbtest.Media(t, db, album, owner)

	got, err := svc.GetAlbum(ctx, owner.ID, group.ID, album.ID)
	require.NoError(t, err)
	assert.Len(t, got.Media, 1)

	_, err = svc.GetAlbum(ctx, stranger.ID, group.ID, album.ID)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	other := dbtest.Group(t, db, stranger)
	_, err = svc.GetAlbum(ctx, stranger.ID, other.ID, album.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
