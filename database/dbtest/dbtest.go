// Package dbtest 为仓库与服务层测试提供内存 SQLite 数据库及种子数据
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/anoixa/group-gallery/database"
	"github.com/anoixa/group-gallery/database/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq atomic.Int64

// Open 创建一个已迁移的内存数据库
// 连接数限制为 1：内存库按连接隔离，且可避免并发写入时的锁错误，
// 多个 goroutine 的语句仍会在连接上交错执行。
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// User 创建测试用户
func User(t testing.TB, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{
		Email:    fmt.Sprintf("%s-%d@example.com", name, seq.Add(1)),
		Name:     name,
		Password: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// Group 创建由 owner 拥有的分组，owner 同时写入成员表
func Group(t testing.TB, db *gorm.DB, owner *models.User, members ...*models.User) *models.Group {
	t.Helper()
	g := &models.Group{Name: fmt.Sprintf("group-%d", seq.Add(1)), OwnerID: owner.ID}
	require.NoError(t, db.Create(g).Error)
	require.NoError(t, db.Create(&models.GroupMember{GroupID: g.ID, UserID: owner.ID}).Error)
	for _, m := range members {
		require.NoError(t, db.Create(&models.GroupMember{GroupID: g.ID, UserID: m.ID}).Error)
	}
	return g
}

// Album 在分组下创建相册
func Album(t testing.TB, db *gorm.DB, group *models.Group) *models.Album {
	t.Helper()
	a := &models.Album{GroupID: group.ID, Title: fmt.Sprintf("album-%d", seq.Add(1))}
	require.NoError(t, db.Create(a).Error)
	return a
}

// Media 在相册下创建媒体记录
func Media(t testing.TB, db *gorm.DB, album *models.Album, uploader *models.User) *models.Media {
	t.Helper()
	id := seq.Add(1)
	m := &models.Media{
		Identifier:   fmt.Sprintf("media%d", id),
		URL:          fmt.Sprintf("/files/media/image/%d.png", id),
		StoragePath:  fmt.Sprintf("media/image/%d.png", id),
		StorageName:  "local",
		OriginalName: "a.png",
		MimeType:     "image/png",
		FileSize:     10,
		Type:         models.MediaTypeImage,
		AlbumID:      album.ID,
		UserID:       uploader.ID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

// Comment 在媒体下创建评论
func Comment(t testing.TB, db *gorm.DB, media *models.Media, author *models.User) *models.Comment {
	t.Helper()
	c := &models.Comment{Content: "nice", MediaID: media.ID, UserID: author.ID}
	require.NoError(t, db.Create(c).Error)
	return c
}
