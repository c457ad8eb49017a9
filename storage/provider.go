package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/anoixa/group-gallery/internal/errs"
)

var (
	// ErrFileNotFound 存储中不存在该文件
	ErrFileNotFound = fmt.Errorf("file %w", errs.ErrNotFound)
	// ErrInvalidPath 存储路径非法（绝对路径、目录遍历或非法字符）
	ErrInvalidPath = errors.New("invalid storage path")
)

// Provider 存储提供者接口
// 所有实现以相对存储路径（如 media/image/2026/01/15/abc.png）寻址。
type Provider interface {
	// SaveWithContext 保存文件，contentType 为空时由实现自行决定
	SaveWithContext(ctx context.Context, storagePath string, file io.Reader, contentType string) error

	// GetWithContext 读取文件，不存在时返回 ErrFileNotFound
	GetWithContext(ctx context.Context, storagePath string) (io.ReadSeeker, error)

	// DeleteWithContext 删除文件
	DeleteWithContext(ctx context.Context, storagePath string) error

	// Exists 检查文件是否存在
	Exists(ctx context.Context, storagePath string) (bool, error)

	// Health 检查存储健康状态
	Health(ctx context.Context) error

	// Name 返回存储名称
	Name() string
}

func invalidPath(storagePath string) error {
	return fmt.Errorf("%w: %s", ErrInvalidPath, storagePath)
}
