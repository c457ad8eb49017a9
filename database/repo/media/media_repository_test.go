package media

import (
	"context"
	"testing"

	"github.com/anoixa/group-gallery/database/dbtest"
	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateAndGet(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db).WithContext(context.Background())
	owner := dbtest.User(t, db, "owner")
	album := dbtest.Album(t, db, dbtest.Group(t, db, owner))

	m := &models.Media{
		Identifier:   "abc",
		URL:          "http://localhost/files/media/image/abc.png",
		StoragePath:  "media/image/2026/01/01/abc.png",
		StorageName:  "local",
		OriginalName: "abc.png",
		MimeType:     "image/png",
		FileSize:     42,
		Width:        3,
		Height:       2,
		Type:         models.MediaTypeImage,
		AlbumID:      album.ID,
		UserID:       owner.ID,
	}
	require.NoError(t, repo.CreateMedia(m))

	got, err := repo.GetMediaByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Identifier)
	assert.Equal(t, 3, got.Width)

	got, err = repo.GetMediaByStoragePath("media/image/2026/01/01/abc.png")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	list, err := repo.ListByAlbum(album.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_GetGroupID(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	owner := dbtest.User(t, db, "owner")
	group := dbtest.Group(t, db, owner)
	album := dbtest.Album(t, db, group)
	m := dbtest.Media(t, db, album, owner)

	groupID, found, err := repo.GetGroupID(m.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, group.ID, groupID)

	_, found, err = repo.GetGroupID(9999)
	require.NoError(t, err)
	assert.False(t, found)

	// 相册被删除后媒体不再可解析
	require.NoError(t, db.Delete(&models.Album{}, album.ID).Error)
	_, found, err = repo.GetGroupID(m.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_NotFound(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)

	_, err := repo.GetMediaByID(1)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = repo.GetMediaByStoragePath("missing")
	assert.ErrorIs(t, err, ErrMediaNotFound)
}
