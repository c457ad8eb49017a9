package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anoixa/group-gallery/cache"
	"github.com/anoixa/group-gallery/database/models"
	mediarepo "github.com/anoixa/group-gallery/database/repo/media"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/anoixa/group-gallery/storage"
)

// File 可供 http.ServeContent 使用的媒体内容
type File struct {
	Media   *models.Media
	Content io.ReadSeeker
	Cached  bool
}

// Close 释放底层存储句柄
func (f *File) Close() error {
	if c, ok := f.Content.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// FileService 按存储路径读取媒体文件
type FileService struct {
	repo    *mediarepo.Repository
	storage storage.Provider
	cache   *cache.MediaCache
}

// NewFileService 创建文件服务；mediaCache 为 nil 时直接读取存储
func NewFileService(repo *mediarepo.Repository, provider storage.Provider, mediaCache *cache.MediaCache) *FileService {
	return &FileService{repo: repo, storage: provider, cache: mediaCache}
}

// Open 打开媒体文件
// 只提供数据库中登记过的路径，小文件经过字节缓存，大文件直接流式读取。
func (s *FileService) Open(ctx context.Context, storagePath string) (*File, error) {
	storagePath = strings.TrimPrefix(storagePath, "/")
	if !storage.IsValidStoragePath(storagePath) {
		return nil, fmt.Errorf("%w: invalid file path", errs.ErrInvalidInput)
	}

	m, err := s.repo.WithContext(ctx).GetMediaByStoragePath(storagePath)
	if err != nil {
		return nil, err
	}

	if s.cache.Cacheable(m.FileSize) {
		data, hit, err := s.cache.Load(ctx, storagePath, func(ctx context.Context) ([]byte, error) {
			return s.readAll(ctx, storagePath)
		})
		if err != nil {
			return nil, err
		}
		return &File{Media: m, Content: bytes.NewReader(data), Cached: hit}, nil
	}

	content, err := s.storage.GetWithContext(ctx, storagePath)
	if err != nil {
		return nil, s.translate(err)
	}
	return &File{Media: m, Content: content}, nil
}

func (s *FileService) readAll(ctx context.Context, storagePath string) ([]byte, error) {
	rs, err := s.storage.GetWithContext(ctx, storagePath)
	if err != nil {
		return nil, s.translate(err)
	}
	if c, ok := rs.(io.Closer); ok {
		defer c.Close()
	}
	return io.ReadAll(rs)
}

func (s *FileService) translate(err error) error {
	if errors.Is(err, storage.ErrInvalidPath) {
		return fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}
	return err
}
