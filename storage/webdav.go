package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/studio-b12/gowebdav"
)

// WebDAVConfig WebDAV 配置结构
type WebDAVConfig struct {
	URL      string
	Username string
	Password string
	RootPath string
	Timeout  time.Duration
}

// WebDAVStorage WebDAV 存储实现
// gowebdav 不接受 context，阻塞调用放在 goroutine 中执行并在 ctx 取消时提前返回。
type WebDAVStorage struct {
	client   *gowebdav.Client
	baseURL  string
	rootPath string
}

// NewWebDAVStorage 创建 WebDAV 存储提供者并验证连接
func NewWebDAVStorage(cfg WebDAVConfig) (*WebDAVStorage, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("webdav URL is required")
	}

	rootPath := strings.Trim(cfg.RootPath, "/")
	if rootPath != "" {
		rootPath = "/" + rootPath
	}

	client := gowebdav.NewClient(cfg.URL, cfg.Username, cfg.Password)
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client.SetTimeout(timeout)

	s := &WebDAVStorage{
		client:   client,
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		rootPath: rootPath,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if rootPath != "" {
		if err := s.do(ctx, func() error { return client.MkdirAll(rootPath, 0755) }); err != nil {
			return nil, fmt.Errorf("webdav connection test failed: %w", err)
		}
	}
	if err := s.Health(ctx); err != nil {
		return nil, fmt.Errorf("webdav connection test failed: %w", err)
	}
	return s, nil
}

// do 在 goroutine 中执行阻塞调用，ctx 取消时立即返回
func (s *WebDAVStorage) do(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// fullPath 生成完整的 WebDAV 路径
func (s *WebDAVStorage) fullPath(storagePath string) string {
	storagePath = strings.TrimLeft(storagePath, "/")
	if s.rootPath != "" {
		return s.rootPath + "/" + storagePath
	}
	return "/" + storagePath
}

// SaveWithContext 保存文件到 WebDAV，父目录由客户端按需创建
func (s *WebDAVStorage) SaveWithContext(ctx context.Context, storagePath string, file io.Reader, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !IsValidStoragePath(storagePath) {
		return invalidPath(storagePath)
	}

	full := s.fullPath(storagePath)
	if err := s.do(ctx, func() error { return s.client.WriteStream(full, file, 0644) }); err != nil {
		return fmt.Errorf("failed to write file %s: %w", storagePath, err)
	}
	return nil
}

// GetWithContext 读取整个文件到内存
func (s *WebDAVStorage) GetWithContext(ctx context.Context, storagePath string) (io.ReadSeeker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !IsValidStoragePath(storagePath) {
		return nil, invalidPath(storagePath)
	}

	var data []byte
	err := s.do(ctx, func() error {
		var readErr error
		data, readErr = s.client.Read(s.fullPath(storagePath))
		return readErr
	})
	if err != nil {
		if gowebdav.IsErrNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, storagePath)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", storagePath, err)
	}
	return bytes.NewReader(data), nil
}

// DeleteWithContext 从 WebDAV 删除文件
func (s *WebDAVStorage) DeleteWithContext(ctx context.Context, storagePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !IsValidStoragePath(storagePath) {
		return invalidPath(storagePath)
	}
	return s.do(ctx, func() error { return s.client.Remove(s.fullPath(storagePath)) })
}

// Exists 检查文件是否存在
func (s *WebDAVStorage) Exists(ctx context.Context, storagePath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !IsValidStoragePath(storagePath) {
		return false, invalidPath(storagePath)
	}

	err := s.do(ctx, func() error {
		_, statErr := s.client.Stat(s.fullPath(storagePath))
		return statErr
	})
	if err == nil {
		return true, nil
	}
	if gowebdav.IsErrNotFound(err) {
		return false, nil
	}
	return false, err
}

// Health 检查根目录可读
func (s *WebDAVStorage) Health(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.client == nil {
		return nil
	}
	root := s.rootPath
	if root == "" {
		root = "/"
	}
	return s.do(ctx, func() error {
		_, err := s.client.ReadDir(root)
		return err
	})
}

// Name 返回存储名称
func (s *WebDAVStorage) Name() string {
	return "webdav"
}
