package albums

import (
	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/api/middleware"
	"github.com/gin-gonic/gin"
)

// GetAlbumDetailHandler GET /api/v1/groups/:groupId/albums/:albumId
func (h *Handler) GetAlbumDetailHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	groupID, ok := common.ParseIDParam(c, "groupId")
	if !ok {
		return
	}
	albumID, ok := common.ParseIDParam(c, "albumId")
	if !ok {
		return
	}

	album, err := h.svc.GetAlbum(c.Request.Context(), userID, groupID, albumID)
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, album)
}
