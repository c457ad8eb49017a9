package database

import (
	"context"
	"testing"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), gormConfig(newGormLogger()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestAutoMigrate(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"users", "groups", "group_members", "albums", "media", "comments", "reactions"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Reaction{}, "idx_reaction_key"))
}

func TestReactionUniqueIndex(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, AutoMigrate(db))
	ctx := context.Background()

	first := &models.Reaction{UserID: 1, TargetType: models.ReactionTargetMedia, TargetID: 7, Emoji: "👍", Type: models.ReactionTypeEmoji}
	require.NoError(t, db.WithContext(ctx).Create(first).Error)

	dup := &models.Reaction{UserID: 1, TargetType: models.ReactionTargetMedia, TargetID: 7, Emoji: "👍", Type: models.ReactionTypeEmoji}
	err := db.WithContext(ctx).Create(dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	other := &models.Reaction{UserID: 1, TargetType: models.ReactionTargetMedia, TargetID: 7, Emoji: "🎉", Type: models.ReactionTypeEmoji}
	assert.NoError(t, db.WithContext(ctx).Create(other).Error)

	comment := &models.Reaction{UserID: 1, TargetType: models.ReactionTargetComment, TargetID: 7, Emoji: "👍", Type: models.ReactionTypeEmoji}
	assert.NoError(t, db.WithContext(ctx).Create(comment).Error)
}

func TestGroupMemberPrimaryKey(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, db.Create(&models.GroupMember{GroupID: 1, UserID: 2}).Error)
	err := db.Create(&models.GroupMember{GroupID: 1, UserID: 2}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestPing(t *testing.T) {
	db := openMemoryDB(t)
	assert.NoError(t, Ping(context.Background(), db))
}
