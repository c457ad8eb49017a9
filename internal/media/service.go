// Package media 处理分组相册中的媒体上传与文件读取
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/anoixa/group-gallery/database/models"
	mediarepo "github.com/anoixa/group-gallery/database/repo/media"
	"github.com/anoixa/group-gallery/internal/access"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/anoixa/group-gallery/storage"
	"github.com/anoixa/group-gallery/utils"
	"github.com/anoixa/group-gallery/utils/format"
	"github.com/anoixa/group-gallery/utils/generator"
	"github.com/anoixa/group-gallery/utils/validator"
	"github.com/gabriel-vasile/mimetype"
)

const maxOriginalNameLength = 255

// UploadRequest 上传请求，FileData 为 base64，允许带 data URL 前缀
type UploadRequest struct {
	FileData string
	FileName string
	FileType string
}

// Service 媒体上传服务
type Service struct {
	gate     *access.Gate
	repo     *mediarepo.Repository
	storage  storage.Provider
	paths    *generator.PathGenerator
	baseURL  string
	maxBytes int64
	now      func() time.Time
}

// NewService 创建媒体上传服务
func NewService(gate *access.Gate, repo *mediarepo.Repository, provider storage.Provider, baseURL string, maxBytes int64) *Service {
	return &Service{
		gate:     gate,
		repo:     repo,
		storage:  provider,
		paths:    generator.NewPathGenerator(),
		baseURL:  baseURL,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// Upload 上传媒体到相册
// 先授权（分组不存在或相册不属于分组返回 404，非成员返回 403），再校验与解码内容。
func (s *Service) Upload(ctx context.Context, actorID, groupID, albumID uint, req UploadRequest) (*models.Media, error) {
	res := access.Resource{GroupID: groupID, AlbumID: albumID}
	if err := s.gate.Require(ctx, actorID, access.ActionUploadMedia, res); err != nil {
		return nil, err
	}

	data, err := s.decode(req)
	if err != nil {
		return nil, err
	}

	mimeType, err := resolveMimeType(data, req.FileType)
	if err != nil {
		return nil, err
	}

	ext := utils.GetSafeExtension(mimeType)
	if ext == "" {
		ext = utils.GetExtensionFromFilename(req.FileName)
	}

	mediaType := models.MediaTypeFromMime(mimeType)
	ids := s.paths.GenerateMediaIdentifiers(s.paths.NewIdentifier(), string(mediaType), ext, s.now())

	record := &models.Media{
		Identifier:   ids.Identifier,
		URL:          utils.BuildFileURL(s.baseURL, ids.StoragePath),
		StoragePath:  ids.StoragePath,
		StorageName:  s.storage.Name(),
		OriginalName: originalName(req.FileName),
		MimeType:     mimeType,
		FileSize:     int64(len(data)),
		Type:         mediaType,
		AlbumID:      albumID,
		UserID:       actorID,
	}
	if mediaType == models.MediaTypeImage {
		if w, h, ok := probeDimensions(data); ok {
			record.Width, record.Height = w, h
		}
	}

	if err := s.storage.SaveWithContext(ctx, ids.StoragePath, bytes.NewReader(data), mimeType); err != nil {
		return nil, fmt.Errorf("failed to store media: %w", err)
	}

	if err := s.repo.WithContext(ctx).CreateMedia(record); err != nil {
		// 元数据写入失败时回收已写入的文件
		if delErr := s.storage.DeleteWithContext(context.WithoutCancel(ctx), ids.StoragePath); delErr != nil {
			log.Printf("[Media] Failed to remove orphaned file %s: %v", ids.StoragePath, delErr)
		}
		return nil, fmt.Errorf("failed to save media metadata: %w", err)
	}

	utils.LogIfDevf("[Media] user %d uploaded %s (%s, %s) to album %d",
		actorID, ids.StoragePath, mimeType, format.HumanReadableSize(record.FileSize), albumID)
	return record, nil
}

// decode 校验并解码 base64 内容
func (s *Service) decode(req UploadRequest) ([]byte, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return nil, fmt.Errorf("%w: fileName is required", errs.ErrInvalidInput)
	}

	payload := strings.TrimSpace(req.FileData)
	if i := strings.Index(payload, ";base64,"); strings.HasPrefix(payload, "data:") && i >= 0 {
		payload = payload[i+len(";base64,"):]
	}
	if payload == "" {
		return nil, fmt.Errorf("%w: fileData is required", errs.ErrInvalidInput)
	}

	if s.maxBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(payload))) > s.maxBytes+2 {
		return nil, fmt.Errorf("%w: file exceeds the %s limit", errs.ErrInvalidInput, format.HumanReadableSize(s.maxBytes))
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: fileData is not valid base64", errs.ErrInvalidInput)
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", errs.ErrInvalidInput)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds the %s limit", errs.ErrInvalidInput, format.HumanReadableSize(s.maxBytes))
	}
	return data, nil
}

// resolveMimeType 以内容嗅探结果为准；嗅探不出具体类型时才采用客户端声明的类型
func resolveMimeType(data []byte, declared string) (string, error) {
	detected := utils.NormalizeMimeType(mimetype.Detect(data).String())
	if validator.IsAllowedMedia(detected) {
		return detected, nil
	}

	declared = utils.NormalizeMimeType(declared)
	generic := detected == "application/octet-stream" || strings.HasPrefix(detected, "text/plain")
	if generic && validator.IsAllowedMedia(declared) {
		return declared, nil
	}
	return "", fmt.Errorf("%w: unsupported media type %q", errs.ErrInvalidInput, detected)
}

func originalName(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	for utf8.RuneCountInString(name) > maxOriginalNameLength {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	return name
}
