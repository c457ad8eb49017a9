package media

import (
	"log"
	"net/http"

	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/utils"
	"github.com/gin-gonic/gin"
)

// GetFileHandler GET /files/*path
// 媒体内容上传后不再变化，允许客户端长期缓存
func (h *Handler) GetFileHandler(c *gin.Context) {
	file, err := h.files.Open(c.Request.Context(), c.Param("path"))
	if err != nil {
		if utils.IsClientDisconnect(err) {
			c.Abort()
			return
		}
		common.RespondServiceError(c, err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("[Files] Failed to close %s: %v", file.Media.StoragePath, err)
		}
	}()

	contentType := file.Media.MimeType
	if contentType == "" {
		// 从旧库复制过来的记录可能缺少 MIME
		if contentType, err = utils.SniffContentType(file.Content); err != nil {
			common.RespondServiceError(c, err)
			return
		}
	}

	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Header("ETag", `"`+file.Media.Identifier+`"`)
	c.Header("X-Content-Type-Options", "nosniff")
	if file.Cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}

	http.ServeContent(c.Writer, c.Request, file.Media.OriginalName, file.Media.CreatedAt, file.Content)
}
