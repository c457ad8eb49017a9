package models

import "gorm.io/gorm"

// Album 相册，访问控制完全继承所属分组
type Album struct {
	gorm.Model
	GroupID     uint   `gorm:"not null;index"`
	Title       string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(255)"`

	Media []*Media `gorm:"foreignKey:AlbumID"`
}
