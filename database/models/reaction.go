package models

import (
	"strings"
	"time"
)

// ReactionTargetType 表态对象类型
type ReactionTargetType string

const (
	ReactionTargetMedia   ReactionTargetType = "MEDIA"
	ReactionTargetComment ReactionTargetType = "COMMENT"
)

// ParseReactionTargetType 解析路由中的对象类型（media / comment，大小写不敏感）
func ParseReactionTargetType(s string) (ReactionTargetType, bool) {
	switch ReactionTargetType(strings.ToUpper(strings.TrimSpace(s))) {
	case ReactionTargetMedia:
		return ReactionTargetMedia, true
	case ReactionTargetComment:
		return ReactionTargetComment, true
	}
	return "", false
}

const (
	// ReactionTypeEmoji 表情表态，Emoji 字段非空
	ReactionTypeEmoji = "EMOJI"
	// ReactionTypeLike 单一类型表态的默认值，Emoji 字段为空串
	ReactionTypeLike = "LIKE"
)

// Reaction 表态记录
// 唯一索引 idx_reaction_key 保证同一 (user, target, emoji) 至多一行；
// 单一类型表态的 Emoji 固定为空串，于是键退化为 (user, target)。
// 不使用软删除，否则已删除的行仍会占用唯一键。
type Reaction struct {
	ID         uint               `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	UserID     uint               `gorm:"not null;uniqueIndex:idx_reaction_key,priority:1" json:"user_id"`
	TargetType ReactionTargetType `gorm:"type:varchar(10);not null;uniqueIndex:idx_reaction_key,priority:2;index:idx_reaction_target,priority:1" json:"target_type"`
	TargetID   uint               `gorm:"not null;uniqueIndex:idx_reaction_key,priority:3;index:idx_reaction_target,priority:2" json:"target_id"`
	Emoji      string             `gorm:"type:varchar(32);not null;uniqueIndex:idx_reaction_key,priority:4" json:"emoji,omitempty"`
	Type       string             `gorm:"type:varchar(20);not null" json:"type"`
}

// TableName 指定表名
func (Reaction) TableName() string {
	return "reactions"
}
