package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaTypeFromMime(t *testing.T) {
	tests := []struct {
		name   string
		mime   string
		expect MediaType
	}{
		{"jpeg", "image/jpeg", MediaTypeImage},
		{"png", "image/png", MediaTypeImage},
		{"mp4", "video/mp4", MediaTypeVideo},
		{"upper case video", "VIDEO/WEBM", MediaTypeVideo},
		{"unknown falls back to image", "application/octet-stream", MediaTypeImage},
		{"empty", "", MediaTypeImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, MediaTypeFromMime(tt.mime))
		})
	}
}

func TestParseReactionTargetType(t *testing.T) {
	tests := []struct {
		input  string
		want   ReactionTargetType
		wantOk bool
	}{
		{"media", ReactionTargetMedia, true},
		{"MEDIA", ReactionTargetMedia, true},
		{"comment", ReactionTargetComment, true},
		{" Comment ", ReactionTargetComment, true},
		{"album", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseReactionTargetType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "media", Media{}.TableName())
	assert.Equal(t, "reactions", Reaction{}.TableName())
	assert.Equal(t, "group_members", GroupMember{}.TableName())
}
