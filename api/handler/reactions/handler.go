package reactions

import (
	"net/http"

	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/api/middleware"
	"github.com/anoixa/group-gallery/database/models"
	svcReactions "github.com/anoixa/group-gallery/internal/reactions"
	"github.com/gin-gonic/gin"
)

// Handler 表态处理器
type Handler struct {
	svc *svcReactions.Service
}

// NewHandler 创建新的表态处理器
func NewHandler(svc *svcReactions.Service) *Handler {
	return &Handler{svc: svc}
}

type toggleRequest struct {
	Emoji string `json:"emoji"`
	Type  string `json:"type"`
}

// targetFromPath 解析 /targets/:type/:id
func targetFromPath(c *gin.Context) (models.ReactionTargetType, uint, bool) {
	kind, ok := models.ParseReactionTargetType(c.Param("type"))
	if !ok {
		common.RespondError(c, http.StatusBadRequest, "Unsupported target type")
		return "", 0, false
	}
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return "", 0, false
	}
	return kind, id, true
}

// ToggleReactionHandler POST /api/v1/targets/:type/:id/reactions
// 移除时返回 {"status":"removed"}，新建或替换时返回表态本身
func (h *Handler) ToggleReactionHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	kind, targetID, ok := targetFromPath(c)
	if !ok {
		return
	}

	var req toggleRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.svc.Toggle(c.Request.Context(), userID, kind, targetID, svcReactions.ToggleRequest{
		Emoji: req.Emoji,
		Type:  req.Type,
	})
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	if result.Removed() {
		c.JSON(http.StatusOK, gin.H{"status": "removed"})
		return
	}
	c.JSON(http.StatusOK, result.Reaction)
}

// ListReactionsHandler GET /api/v1/targets/:type/:id/reactions
func (h *Handler) ListReactionsHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	kind, targetID, ok := targetFromPath(c)
	if !ok {
		return
	}

	list, err := h.svc.ListReactions(c.Request.Context(), userID, kind, targetID)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, list)
}
