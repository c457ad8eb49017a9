package validator

import (
	"strings"
)

// allowedImageMimeTypes 允许上传的图片类型
var allowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/heic": true,
}

// allowedVideoMimeTypes 允许上传的视频类型
var allowedVideoMimeTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"video/ogg":       true,
}

func normalize(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

// IsAllowedImage 是否为允许的图片类型
func IsAllowedImage(mimeType string) bool {
	return allowedImageMimeTypes[normalize(mimeType)]
}

// IsAllowedVideo 是否为允许的视频类型
func IsAllowedVideo(mimeType string) bool {
	return allowedVideoMimeTypes[normalize(mimeType)]
}

// IsAllowedMedia 是否为允许上传的媒体类型
func IsAllowedMedia(mimeType string) bool {
	return IsAllowedImage(mimeType) || IsAllowedVideo(mimeType)
}
