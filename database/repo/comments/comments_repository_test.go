package comments

import (
	"context"
	"testing"

	"github.com/anoixa/group-gallery/database/dbtest"
	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateAndList(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db).WithContext(context.Background())
	owner := dbtest.User(t, db, "owner")
	m := dbtest.Media(t, db, dbtest.Album(t, db, dbtest.Group(t, db, owner)), owner)

	first := &models.Comment{Content: "first", MediaID: m.ID, UserID: owner.ID}
	require.NoError(t, repo.CreateComment(first))
	require.NotNil(t, first.User)
	assert.Equal(t, owner.ID, first.User.ID)

	require.NoError(t, repo.CreateComment(&models.Comment{Content: "second", MediaID: m.ID, UserID: owner.ID}))

	list, err := repo.ListByMedia(m.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
	require.NotNil(t, list[0].User)
	assert.Equal(t, owner.Name, list[0].User.Name)
}

func TestRepository_GetGroupID(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	owner := dbtest.User(t, db, "owner")
	group := dbtest.Group(t, db, owner)
	m := dbtest.Media(t, db, dbtest.Album(t, db, group), owner)
	c := dbtest.Comment(t, db, m, owner)

	groupID, found, err := repo.GetGroupID(c.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, group.ID, groupID)

	require.NoError(t, db.Delete(&models.Media{}, m.ID).Error)
	_, found, err = repo.GetGroupID(c.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_NotFound(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)

	_, err := repo.GetCommentByID(5)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, found, err := repo.GetGroupID(5)
	require.NoError(t, err)
	assert.False(t, found)
}
