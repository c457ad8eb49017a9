package groups

import (
	"net/http"

	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/api/middleware"
	svcGroups "github.com/anoixa/group-gallery/internal/groups"
	"github.com/gin-gonic/gin"
)

// Handler 分组处理器
type Handler struct {
	svc *svcGroups.Service
}

// NewHandler 创建新的分组处理器
func NewHandler(svc *svcGroups.Service) *Handler {
	return &Handler{svc: svc}
}

type createGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type inviteRequest struct {
	Email string `json:"email"`
}

// CreateGroupHandler POST /api/v1/groups
func (h *Handler) CreateGroupHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	group, err := h.svc.CreateGroup(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, group)
}

// ListGroupsHandler GET /api/v1/groups
func (h *Handler) ListGroupsHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	list, err := h.svc.ListGroups(c.Request.Context(), userID)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, list)
}

// GetGroupHandler GET /api/v1/groups/:groupId
func (h *Handler) GetGroupHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	groupID, ok := common.ParseIDParam(c, "groupId")
	if !ok {
		return
	}

	group, err := h.svc.GetGroup(c.Request.Context(), userID, groupID)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, group)
}

// InviteHandler POST /api/v1/groups/:groupId/invite
func (h *Handler) InviteHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	groupID, ok := common.ParseIDParam(c, "groupId")
	if !ok {
		return
	}

	var req inviteRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.svc.Invite(c.Request.Context(), userID, groupID, req.Email); err != nil {
		common.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
