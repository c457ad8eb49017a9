package albums

import (
	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/api/middleware"
	"github.com/gin-gonic/gin"
)

type createAlbumRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateAlbumHandler POST /api/v1/groups/:groupId/albums
// 长度等校验交给服务层，保证非成员先得到 403
func (h *Handler) CreateAlbumHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	groupID, ok := common.ParseIDParam(c, "groupId")
	if !ok {
		return
	}

	var req createAlbumRequest
	_ = c.ShouldBindJSON(&req)

	album, err := h.svc.CreateAlbum(c.Request.Context(), userID, groupID, req.Title, req.Description)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, album)
}
