package media

import (
	svcMedia "github.com/anoixa/group-gallery/internal/media"
)

// Handler 媒体处理器
type Handler struct {
	upload *svcMedia.Service
	files  *svcMedia.FileService
}

// NewHandler 创建新的媒体处理器
func NewHandler(upload *svcMedia.Service, files *svcMedia.FileService) *Handler {
	return &Handler{upload: upload, files: files}
}
