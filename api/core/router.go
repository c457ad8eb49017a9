package core

import (
	"net/http"
	"time"

	"github.com/anoixa/group-gallery/api"
	"github.com/anoixa/group-gallery/api/common"
	handlerAlbums "github.com/anoixa/group-gallery/api/handler/albums"
	handlerComments "github.com/anoixa/group-gallery/api/handler/comments"
	handlerGroups "github.com/anoixa/group-gallery/api/handler/groups"
	handlerMedia "github.com/anoixa/group-gallery/api/handler/media"
	handlerReactions "github.com/anoixa/group-gallery/api/handler/reactions"
	"github.com/anoixa/group-gallery/api/middleware"
	"github.com/anoixa/group-gallery/config"
	"github.com/anoixa/group-gallery/internal/app"
	"github.com/gin-gonic/gin"
)

// RouterDependencies 路由注册依赖
type RouterDependencies struct {
	Container        *app.Container
	AuthRateLimiter  *middleware.IPRateLimiter
	APIRateLimiter   *middleware.IPRateLimiter
	FileRateLimiter  *middleware.IPRateLimiter
	UploadLimiter    *middleware.ConcurrencyLimiter
	UploadWaitWindow time.Duration
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, deps *RouterDependencies) {
	registerBasicRoutes(router, deps)
	registerPublicRoutes(router, deps)
	registerAPIRoutes(router, deps)
}

// registerBasicRoutes 注册基础路由
func registerBasicRoutes(router *gin.Engine, deps *RouterDependencies) {
	healthHandler := NewHealthHandler(deps.Container)
	router.GET("/health", healthHandler.Handle)

	router.GET("/version", func(context *gin.Context) {
		common.RespondSuccess(context, config.BuildInfo())
	})

	router.GET("/metrics", func(context *gin.Context) {
		context.JSON(http.StatusOK, middleware.GetMetrics())
	})
}

// registerPublicRoutes 注册公共文件访问路由
func registerPublicRoutes(router *gin.Engine, deps *RouterDependencies) {
	c := deps.Container
	mediaHandler := handlerMedia.NewHandler(c.Media, c.Files)

	filesGroup := router.Group("/files")
	filesGroup.Use(deps.FileRateLimiter.Middleware())
	{
		filesGroup.GET("/*path", mediaHandler.GetFileHandler)  // GET /files/{storage_path}
		filesGroup.HEAD("/*path", mediaHandler.GetFileHandler) // HEAD /files/{storage_path}
	}
}

// registerAPIRoutes 注册 API 路由
func registerAPIRoutes(router *gin.Engine, deps *RouterDependencies) {
	c := deps.Container
	loginHandler := api.NewLoginHandler(c.Login)
	groupHandler := handlerGroups.NewHandler(c.Groups)
	albumHandler := handlerAlbums.NewHandler(c.Albums)
	mediaHandler := handlerMedia.NewHandler(c.Media, c.Files)
	commentHandler := handlerComments.NewHandler(c.Comments)
	reactionHandler := handlerReactions.NewHandler(c.Reactions)

	apiGroup := router.Group("/api")
	apiGroup.Use(func(context *gin.Context) { // 所有API禁止缓存
		context.Header("Cache-Control", "no-store")
		context.Next()
	})
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.Use(deps.AuthRateLimiter.Middleware())
		{
			authGroup.POST("/register", loginHandler.RegisterHandlerFunc) // POST /api/auth/register
			authGroup.POST("/login", loginHandler.LoginHandlerFunc)       // POST /api/auth/login
		}

		v1 := apiGroup.Group("/v1")
		v1.Use(deps.APIRateLimiter.Middleware())
		v1.Use(middleware.JWTAuth(c.JWT))
		{
			// groups
			groupsGroup := v1.Group("/groups")
			{
				groupsGroup.POST("", groupHandler.CreateGroupHandler)                 // POST /api/v1/groups
				groupsGroup.GET("", groupHandler.ListGroupsHandler)                   // GET /api/v1/groups
				groupsGroup.GET("/:groupId", groupHandler.GetGroupHandler)            // GET /api/v1/groups/{groupId}
				groupsGroup.POST("/:groupId/invite", groupHandler.InviteHandler)      // POST /api/v1/groups/{groupId}/invite
				groupsGroup.POST("/:groupId/albums", albumHandler.CreateAlbumHandler) // POST /api/v1/groups/{groupId}/albums

				groupsGroup.GET("/:groupId/albums/:albumId", albumHandler.GetAlbumDetailHandler) // GET /api/v1/groups/{groupId}/albums/{albumId}
				groupsGroup.POST("/:groupId/albums/:albumId/media",
					deps.UploadLimiter.MiddlewareWithBlock(deps.UploadWaitWindow),
					mediaHandler.UploadMediaHandler) // POST /api/v1/groups/{groupId}/albums/{albumId}/media
			}

			// comments
			v1.GET("/media/:mediaId/comments", commentHandler.ListCommentsHandler)   // GET /api/v1/media/{mediaId}/comments
			v1.POST("/media/:mediaId/comments", commentHandler.CreateCommentHandler) // POST /api/v1/media/{mediaId}/comments

			// reactions
			v1.POST("/targets/:type/:id/reactions", reactionHandler.ToggleReactionHandler) // POST /api/v1/targets/{media|comment}/{id}/reactions
			v1.GET("/targets/:type/:id/reactions", reactionHandler.ListReactionsHandler)   // GET /api/v1/targets/{media|comment}/{id}/reactions
		}
	}
}
