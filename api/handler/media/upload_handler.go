package media

import (
	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/api/middleware"
	svcMedia "github.com/anoixa/group-gallery/internal/media"
	"github.com/gin-gonic/gin"
)

type uploadRequest struct {
	FileData string `json:"fileData"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// UploadMediaHandler POST /api/v1/groups/:groupId/albums/:albumId/media
func (h *Handler) UploadMediaHandler(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	groupID, ok := common.ParseIDParam(c, "groupId")
	if !ok {
		return
	}
	albumID, ok := common.ParseIDParam(c, "albumId")
	if !ok {
		return
	}

	var req uploadRequest
	_ = c.ShouldBindJSON(&req)

	media, err := h.upload.Upload(c.Request.Context(), userID, groupID, albumID, svcMedia.UploadRequest{
		FileData: req.FileData,
		FileName: req.FileName,
		FileType: req.FileType,
	})
	if err != nil {
		common.RespondServiceError(c, err)
		return
	}

	common.RespondSuccess(c, media)
}
