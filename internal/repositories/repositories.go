package repositories

import (
	"github.com/anoixa/group-gallery/database/repo/accounts"
	"github.com/anoixa/group-gallery/database/repo/albums"
	"github.com/anoixa/group-gallery/database/repo/comments"
	"github.com/anoixa/group-gallery/database/repo/groups"
	"github.com/anoixa/group-gallery/database/repo/media"
	"github.com/anoixa/group-gallery/database/repo/reactions"
	"gorm.io/gorm"
)

// Repositories 集中管理所有数据库仓库
type Repositories struct {
	Accounts  *accounts.Repository
	Groups    *groups.Repository
	Albums    *albums.Repository
	Media     *media.Repository
	Comments  *comments.Repository
	Reactions *reactions.Repository
}

// NewRepositories 创建所有仓库实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Accounts:  accounts.NewRepository(db),
		Groups:    groups.NewRepository(db),
		Albums:    albums.NewRepository(db),
		Media:     media.NewRepository(db),
		Comments:  comments.NewRepository(db),
		Reactions: reactions.NewRepository(db),
	}
}
