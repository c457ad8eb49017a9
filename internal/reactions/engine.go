// Package reactions 实现表态的切换语义。
//
// 同一 (用户, 对象, 键) 在存储中至多一行，由唯一索引保证。
// 切换不持有锁也不包裹事务：插入撞上唯一约束说明另一个并发切换刚刚完成，
// 此时重新读取状态并走另一个分支。
package reactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anoixa/group-gallery/database"
	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/database/repo/reactions"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/anoixa/group-gallery/utils"
)

// Mode 表态的键模式
type Mode int

const (
	// ModeEmoji 以 emoji 区分，不同 emoji 可以共存
	ModeEmoji Mode = iota
	// ModeSingle 每个用户在一个对象上至多一条表态，类型不同时原地替换
	ModeSingle
)

const maxEmojiBytes = 32

// Key 表态键
type Key struct {
	Mode  Mode
	Emoji string
	Type  string
}

// EmojiKey 构造 emoji 模式的键
func EmojiKey(emoji string) Key {
	return Key{Mode: ModeEmoji, Emoji: strings.TrimSpace(emoji)}
}

// SingleKey 构造单一类型模式的键，空类型视为 LIKE
func SingleKey(reactionType string) Key {
	t := strings.ToUpper(strings.TrimSpace(reactionType))
	if t == "" {
		t = models.ReactionTypeLike
	}
	return Key{Mode: ModeSingle, Type: t}
}

func (k Key) validate() error {
	switch k.Mode {
	case ModeEmoji:
		if k.Emoji == "" {
			return fmt.Errorf("%w: emoji is required", errs.ErrInvalidInput)
		}
		if len(k.Emoji) > maxEmojiBytes {
			return fmt.Errorf("%w: emoji is too long", errs.ErrInvalidInput)
		}
	case ModeSingle:
		if k.Type == "" || k.Type == models.ReactionTypeEmoji || len(k.Type) > 20 {
			return fmt.Errorf("%w: invalid reaction type %q", errs.ErrInvalidInput, k.Type)
		}
	default:
		return fmt.Errorf("%w: unknown reaction mode", errs.ErrInvalidInput)
	}
	return nil
}

// Outcome 切换结果
type Outcome int

const (
	OutcomeRemoved Outcome = iota
	OutcomeCreated
)

// ToggleResult 切换结果；Created 时 Reaction 为当前存储中的行
type ToggleResult struct {
	Outcome  Outcome
	Reaction *models.Reaction
}

// Removed 是否为移除
func (r ToggleResult) Removed() bool {
	return r.Outcome == OutcomeRemoved
}

// Engine 表态切换引擎
type Engine struct {
	repo        *reactions.Repository
	maxAttempts int
}

// NewEngine 创建切换引擎
// 每次失败的尝试都意味着另一个切换已经成功，因此 N 个并发切换最多需要 N 次尝试。
func NewEngine(repo *reactions.Repository, maxAttempts int) *Engine {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Engine{repo: repo, maxAttempts: maxAttempts}
}

// Toggle 在 target 上切换 actor 的表态
func (e *Engine) Toggle(ctx context.Context, actorID uint, target Target, key Key) (ToggleResult, error) {
	if !target.Exists {
		return ToggleResult{}, fmt.Errorf("%w: %s %d", errs.ErrNotFound, strings.ToLower(string(target.Kind)), target.ID)
	}
	if err := key.validate(); err != nil {
		return ToggleResult{}, err
	}

	repo := e.repo.WithContext(ctx)
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		var (
			result ToggleResult
			done   bool
			err    error
		)
		if key.Mode == ModeEmoji {
			result, done, err = e.toggleEmoji(repo, actorID, target, key)
		} else {
			result, done, err = e.toggleSingle(repo, actorID, target, key)
		}
		if err != nil {
			return ToggleResult{}, fmt.Errorf("failed to toggle reaction: %w", err)
		}
		if done {
			return result, nil
		}
		utils.LogIfDevf("[Reactions] toggle raced on %s %d for user %d, attempt %d", target.Kind, target.ID, actorID, attempt)
	}

	return ToggleResult{}, fmt.Errorf("%w: reaction changed concurrently, try again", errs.ErrConflict)
}

// toggleEmoji 删除命中即为移除；否则插入，撞上唯一约束则重试
func (e *Engine) toggleEmoji(repo *reactions.Repository, actorID uint, target Target, key Key) (ToggleResult, bool, error) {
	rk := reactions.Key{UserID: actorID, TargetType: target.Kind, TargetID: target.ID, Emoji: key.Emoji}

	deleted, err := repo.DeleteByKey(rk)
	if err != nil {
		return ToggleResult{}, false, err
	}
	if deleted > 0 {
		return ToggleResult{Outcome: OutcomeRemoved}, true, nil
	}

	reaction := &models.Reaction{
		UserID:     actorID,
		TargetType: target.Kind,
		TargetID:   target.ID,
		Emoji:      key.Emoji,
		Type:       models.ReactionTypeEmoji,
	}
	if err := repo.Create(reaction); err != nil {
		if database.IsUniqueViolation(err) {
			return ToggleResult{}, false, nil
		}
		return ToggleResult{}, false, err
	}
	return ToggleResult{Outcome: OutcomeCreated, Reaction: reaction}, true, nil
}

// toggleSingle 同类型删除，异类型乐观更新，不存在则插入
func (e *Engine) toggleSingle(repo *reactions.Repository, actorID uint, target Target, key Key) (ToggleResult, bool, error) {
	rk := reactions.Key{UserID: actorID, TargetType: target.Kind, TargetID: target.ID}

	existing, err := repo.FindByKey(rk)
	if err != nil {
		return ToggleResult{}, false, err
	}

	if existing == nil {
		reaction := &models.Reaction{
			UserID:     actorID,
			TargetType: target.Kind,
			TargetID:   target.ID,
			Type:       key.Type,
		}
		if err := repo.Create(reaction); err != nil {
			if database.IsUniqueViolation(err) {
				return ToggleResult{}, false, nil
			}
			return ToggleResult{}, false, err
		}
		return ToggleResult{Outcome: OutcomeCreated, Reaction: reaction}, true, nil
	}

	if existing.Type == key.Type {
		deleted, err := repo.DeleteByID(existing.ID, key.Type)
		if err != nil {
			return ToggleResult{}, false, err
		}
		if deleted == 0 {
			return ToggleResult{}, false, nil
		}
		return ToggleResult{Outcome: OutcomeRemoved}, true, nil
	}

	swappedAt := time.Now()
	updated, err := repo.SwapType(existing.ID, existing.Type, key.Type, swappedAt)
	if err != nil {
		return ToggleResult{}, false, err
	}
	if updated == 0 {
		return ToggleResult{}, false, nil
	}
	existing.Type = key.Type
	existing.UpdatedAt = swappedAt
	return ToggleResult{Outcome: OutcomeCreated, Reaction: existing}, true, nil
}
