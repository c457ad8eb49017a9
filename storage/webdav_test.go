package storage

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/webdav"
)

// newWebDAVServer 启动一个基于内存文件系统的 WebDAV 服务
func newWebDAVServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(&webdav.Handler{
		FileSystem: webdav.NewMemFS(),
		LockSystem: webdav.NewMemLS(),
	})
	t.Cleanup(srv.Close)
	return srv
}

func TestNewWebDAVStorage_Validation(t *testing.T) {
	_, err := NewWebDAVStorage(WebDAVConfig{})
	assert.Error(t, err)

	_, err = NewWebDAVStorage(WebDAVConfig{URL: "http://127.0.0.1:1"})
	assert.Error(t, err)
}

func TestWebDAVStorage_RoundTrip(t *testing.T) {
	srv := newWebDAVServer(t)
	s, err := NewWebDAVStorage(WebDAVConfig{URL: srv.URL, RootPath: "/gallery/"})
	require.NoError(t, err)
	ctx := context.Background()
	path := "media/image/2026/01/15/abc.png"

	require.NoError(t, s.SaveWithContext(ctx, path, strings.NewReader("dav-bytes"), "image/png"))

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	r, err := s.GetWithContext(ctx, path)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "dav-bytes", string(data))

	require.NoError(t, s.DeleteWithContext(ctx, path))
	exists, err = s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.GetWithContext(ctx, path)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestWebDAVStorage_InvalidPath(t *testing.T) {
	srv := newWebDAVServer(t)
	s, err := NewWebDAVStorage(WebDAVConfig{URL: srv.URL})
	require.NoError(t, err)

	err = s.SaveWithContext(context.Background(), "../escape.txt", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestWebDAVStorage_FullPath(t *testing.T) {
	tests := []struct {
		name        string
		rootPath    string
		storagePath string
		want        string
	}{
		{"empty root", "", "media/image/2026/01/15/a.jpg", "/media/image/2026/01/15/a.jpg"},
		{"with root", "/gallery", "media/a.jpg", "/gallery/media/a.jpg"},
		{"leading slash", "", "/a.jpg", "/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &WebDAVStorage{rootPath: tt.rootPath}
			assert.Equal(t, tt.want, s.fullPath(tt.storagePath))
		})
	}
}

func TestWebDAVStorage_ContextCancellation(t *testing.T) {
	s := &WebDAVStorage{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.SaveWithContext(ctx, "a.jpg", nil, ""), context.Canceled)
	_, err := s.GetWithContext(ctx, "a.jpg")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.DeleteWithContext(ctx, "a.jpg"), context.Canceled)
	_, err = s.Exists(ctx, "a.jpg")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Health(ctx), context.Canceled)
}
