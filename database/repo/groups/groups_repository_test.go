package groups

import (
	"context"
	"testing"

	"github.com/anoixa/group-gallery/database/dbtest"
	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateGroupAddsOwnerAsMember(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db).WithContext(context.Background())
	owner := dbtest.User(t, db, "owner")

	group := &models.Group{Name: "family", OwnerID: owner.ID}
	require.NoError(t, repo.CreateGroup(group))
	assert.NotZero(t, group.ID)

	isMember, err := repo.HasMember(group.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	ownerID, found, err := repo.GetOwnerID(group.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, owner.ID, ownerID)
}

func TestRepository_GetOwnerIDMissingGroup(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)

	_, found, err := repo.GetOwnerID(404)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.GetGroupByID(404)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_AddMemberIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	owner := dbtest.User(t, db, "owner")
	guest := dbtest.User(t, db, "guest")
	group := dbtest.Group(t, db, owner)

	added, err := repo.AddMember(group.ID, guest.ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddMember(group.ID, guest.ID)
	require.NoError(t, err)
	assert.False(t, added)

	count, err := repo.CountMembers(group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRepository_ListGroupsForUser(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	alice := dbtest.User(t, db, "alice")
	bob := dbtest.User(t, db, "bob")
	carol := dbtest.User(t, db, "carol")

	owned := dbtest.Group(t, db, alice)
	joined := dbtest.Group(t, db, bob, alice)
	dbtest.Group(t, db, carol)
	dbtest.Album(t, db, owned)

	// 所有者不在成员表中时也应被列出
	ownerOnly := &models.Group{Name: "legacy", OwnerID: alice.ID}
	require.NoError(t, db.Create(ownerOnly).Error)

	groups, err := repo.ListGroupsForUser(alice.ID)
	require.NoError(t, err)

	ids := make([]uint, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
		if g.ID == owned.ID {
			assert.Len(t, g.Albums, 1)
		}
	}
	assert.ElementsMatch(t, []uint{owned.ID, joined.ID, ownerOnly.ID}, ids)
}

func TestRepository_GetGroupDetail(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	owner := dbtest.User(t, db, "owner")
	member := dbtest.User(t, db, "member")
	group := dbtest.Group(t, db, owner, member)
	dbtest.Album(t, db, group)

	detail, err := repo.GetGroupDetail(group.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Owner)
	assert.Equal(t, owner.ID, detail.Owner.ID)
	assert.Len(t, detail.Members, 2)
	assert.Len(t, detail.Albums, 1)
}
