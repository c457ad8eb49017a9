package models

import (
	"time"

	"gorm.io/gorm"
)

// Group 分组；Owner 不一定出现在 Members 中，鉴权时需同时判断
type Group struct {
	gorm.Model
	Name        string `gorm:"type:varchar(100);not null;index"`
	Description string `gorm:"type:varchar(255)"`
	OwnerID     uint   `gorm:"not null;index"`
	Owner       *User  `gorm:"foreignKey:OwnerID"`

	Members []*User  `gorm:"many2many:group_members;"`
	Albums  []*Album `gorm:"foreignKey:GroupID"`
}

// GroupMember 显式成员关系表，(group_id, user_id) 为联合主键
type GroupMember struct {
	GroupID   uint `gorm:"primaryKey"`
	UserID    uint `gorm:"primaryKey;index"`
	CreatedAt time.Time
}

// TableName 指定表名
func (GroupMember) TableName() string {
	return "group_members"
}
