package albums

import (
	svcAlbums "github.com/anoixa/group-gallery/internal/albums"
)

// Handler 相册处理器
type Handler struct {
	svc *svcAlbums.Service
}

// NewHandler 创建新的相册处理器
func NewHandler(svc *svcAlbums.Service) *Handler {
	return &Handler{svc: svc}
}
