package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedMedia(t *testing.T) {
	tests := []struct {
		mime  string
		image bool
		video bool
	}{
		{"image/jpeg", true, false},
		{"IMAGE/PNG", true, false},
		{"image/webp; charset=binary", true, false},
		{"image/heic", true, false},
		{"video/mp4", false, true},
		{"video/quicktime", false, true},
		{"image/svg+xml", false, false},
		{"text/html", false, false},
		{"application/octet-stream", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.image, IsAllowedImage(tt.mime))
			assert.Equal(t, tt.video, IsAllowedVideo(tt.mime))
			assert.Equal(t, tt.image || tt.video, IsAllowedMedia(tt.mime))
		})
	}
}
