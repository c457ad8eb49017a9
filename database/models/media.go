package models

import (
	"github.com/anoixa/group-gallery/utils"
	"gorm.io/gorm"
)

type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"
)

// MediaTypeFromMime 上传时根据 Content-Type 推导媒体类型
func MediaTypeFromMime(mimeType string) MediaType {
	if utils.IsVideoMimeType(mimeType) {
		return MediaTypeVideo
	}
	return MediaTypeImage
}

type Media struct {
	gorm.Model
	Identifier   string    `gorm:"uniqueIndex:idx_media_identifier;not null"`
	URL          string    `gorm:"not null"`
	StoragePath  string    `gorm:"not null"`
	StorageName  string    `gorm:"type:varchar(20);not null"`
	OriginalName string    `gorm:"not null"`
	MimeType     string    `gorm:"not null"`
	FileSize     int64     `gorm:"not null"`
	Width        int
	Height       int
	Type         MediaType `gorm:"type:varchar(10);not null"`

	AlbumID uint   `gorm:"not null;index:idx_album_created_at,priority:1"`
	Album   *Album `gorm:"foreignKey:AlbumID"`
	UserID  uint   `gorm:"not null;index"`
	User    *User  `gorm:"foreignKey:UserID"`
}

// TableName 指定表名
func (Media) TableName() string {
	return "media"
}
