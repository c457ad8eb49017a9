package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anoixa/group-gallery/cache"
	"github.com/anoixa/group-gallery/config"
	"github.com/anoixa/group-gallery/database"
	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/albums"
	"github.com/anoixa/group-gallery/internal/auth"
	"github.com/anoixa/group-gallery/internal/comments"
	"github.com/anoixa/group-gallery/internal/groups"
	"github.com/anoixa/group-gallery/internal/media"
	"github.com/anoixa/group-gallery/internal/reactions"
	"github.com/anoixa/group-gallery/internal/repositories"
	"github.com/anoixa/group-gallery/storage"
	"github.com/anoixa/group-gallery/utils"
	"gorm.io/gorm"
)

// Container 依赖注入容器 - 管理所有服务的生命周期
type Container struct {
	config *config.Config

	DB           *gorm.DB
	Storage      storage.Provider
	Cache        cache.Provider
	Repositories *repositories.Repositories

	JWT       *auth.JWTService
	Login     *auth.LoginService
	Gate      *access.Gate
	Groups    *groups.Service
	Albums    *albums.Service
	Media     *media.Service
	Files     *media.FileService
	Comments  *comments.Service
	Reactions *reactions.Service
}

// NewContainer 按配置打开数据库、存储与缓存，并组装所有服务
func NewContainer(cfg *config.Config) (*Container, error) {
	utils.LogIfDev("Initializing DI container...")

	db, err := database.NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	provider, err := storage.NewProvider(cfg)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	cacheProvider, err := cache.NewProvider(cfg)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	c, err := Build(cfg, db, provider, cacheProvider)
	if err != nil {
		_ = cacheProvider.Close()
		_ = database.Close(db)
		return nil, err
	}

	utils.LogIfDev("DI container initialized successfully")
	return c, nil
}

// Build 在已有的基础设施上组装服务，cacheProvider 可为 nil
func Build(cfg *config.Config, db *gorm.DB, provider storage.Provider, cacheProvider cache.Provider) (*Container, error) {
	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT: %w", err)
	}

	repos := repositories.NewRepositories(db)
	index := access.NewMembershipIndex(repos.Groups)
	gate := access.NewGate(index, repos.Groups, repos.Albums)

	reactionService := reactions.NewService(
		reactions.NewResolver(repos.Media, repos.Comments),
		reactions.NewEngine(repos.Reactions, cfg.ReactionToggleAttempts),
		index,
		repos.Accounts,
	)

	var mediaCache *cache.MediaCache
	if cacheProvider != nil {
		mediaCache = cache.NewMediaCache(cacheProvider, cfg.CacheMediaTTL, cfg.CacheMediaMaxKB<<10)
	}

	return &Container{
		config:       cfg,
		DB:           db,
		Storage:      provider,
		Cache:        cacheProvider,
		Repositories: repos,

		JWT:   jwtService,
		Login: auth.NewLoginService(repos.Accounts, jwtService),
		Gate:  gate,

		Groups:    groups.NewService(repos.Groups, repos.Accounts, gate),
		Albums:    albums.NewService(repos.Albums, gate),
		Media:     media.NewService(gate, repos.Media, provider, cfg.BaseURL(), int64(cfg.UploadMaxSizeMB)<<20),
		Files:     media.NewFileService(repos.Media, provider, mediaCache),
		Comments:  comments.NewService(repos.Comments, repos.Media, gate),
		Reactions: reactionService,
	}, nil
}

// GetConfig 获取配置
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// HealthChecks 检查数据库、存储和缓存，返回各组件状态
func (c *Container) HealthChecks(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	checks := map[string]string{
		"database": statusOf(database.Ping(ctx, c.DB)),
		"storage":  statusOf(c.Storage.Health(ctx)),
	}
	if c.Cache != nil {
		checks["cache"] = statusOf(c.Cache.Health(ctx))
	} else {
		checks["cache"] = "disabled"
	}
	return checks
}

func statusOf(err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

// Close 关闭所有服务
func (c *Container) Close() error {
	utils.LogIfDev("Closing DI container...")

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Printf("[Container] Error closing cache: %v", err)
		}
	}

	if err := database.Close(c.DB); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}

	utils.LogIfDev("DI container closed")
	return nil
}
