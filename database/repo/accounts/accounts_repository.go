package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anoixa/group-gallery/database"
	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/internal/errs"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound 用户不存在错误
	ErrUserNotFound = fmt.Errorf("user %w", errs.ErrNotFound)
	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = fmt.Errorf("email already registered: %w", errs.ErrConflict)
)

// Repository 账户仓库
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建新的账户仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

// NormalizeEmail 邮箱统一小写并去除首尾空白
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetUserByEmail 通过邮箱获取用户
func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID 通过ID获取用户
func (r *Repository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser 创建用户，邮箱冲突时返回 ErrEmailTaken
func (r *Repository) CreateUser(user *models.User) error {
	user.Email = NormalizeEmail(user.Email)
	if err := r.db.Create(user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// UpdatePassword 更新密码哈希，用于登录时把旧 bcrypt 哈希升级为 argon2
func (r *Repository) UpdatePassword(userID uint, hash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("password", hash).Error
}

// UserExists 检查邮箱是否已注册
func (r *Repository) UserExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", NormalizeEmail(email)).Count(&count).Error
	return count > 0, err
}
