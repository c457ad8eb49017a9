package comments

import (
	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/api/middleware"
	svcComments "github.com/anoixa/group-gallery/internal/comments"
	"github.com/gin-gonic/gin"
)

// Handler 评论处理器
type Handler struct {
	svc *svcComments.Service
}

// NewHandler 创建新的评论处理器
func NewHandler(svc *svcComments.Service) *Handler {
	return &Handler{svc: svc}
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// ListCommentsHandler GET /api/v1/media/:mediaId/comments
func (h *Handler) ListCommentsHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	mediaID, ok := common.ParseIDParam(c, "mediaId")
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID, mediaID)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, list)
}

// CreateCommentHandler POST /api/v1/media/:mediaId/comments
func (h *Handler) CreateCommentHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	mediaID, ok := common.ParseIDParam(c, "mediaId")
	if !ok {
		return
	}

	var req createCommentRequest
	_ = c.ShouldBindJSON(&req)

	comment, err := h.svc.Create(c.Request.Context(), userID, mediaID, req.Content)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, comment)
}
