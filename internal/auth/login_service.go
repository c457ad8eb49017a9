package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/anoixa/group-gallery/database/models"
	"github.com/anoixa/group-gallery/database/repo/accounts"
	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/anoixa/group-gallery/utils"
	cryptopackage "github.com/anoixa/group-gallery/utils/crypto"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	maxNameLength     = 100
)

// ErrInvalidCredentials 邮箱或密码错误
var ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", errs.ErrUnauthenticated)

// LoginResult 登录结果
type LoginResult struct {
	User              *models.User
	AccessToken       string
	AccessTokenExpiry time.Time
}

// LoginService 注册与登录服务
type LoginService struct {
	accountsRepo *accounts.Repository
	jwtService   *JWTService
}

// NewLoginService 创建新的登录服务
func NewLoginService(accountsRepo *accounts.Repository, jwtService *JWTService) *LoginService {
	return &LoginService{accountsRepo: accountsRepo, jwtService: jwtService}
}

// Register 注册新用户，邮箱重复返回 ErrConflict
func (s *LoginService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	email = accounts.NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, fmt.Errorf("%w: a valid email is required", errs.ErrInvalidInput)
	}
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be 1-%d characters", errs.ErrInvalidInput, maxNameLength)
	}
	if n := utf8.RuneCountInString(password); n < minPasswordLength || n > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must be %d-%d characters", errs.ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}

	hash, err := cryptopackage.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: email, Name: name, Password: hash}
	if err := s.accountsRepo.WithContext(ctx).CreateUser(user); err != nil {
		return nil, err
	}

	log.Printf("[Auth] Registered user %d (%s)", user.ID, utils.SanitizeLogEmail(email))
	return user, nil
}

// ValidateCredentials 验证用户凭据；旧格式哈希在验证通过后升级
func (s *LoginService) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.accountsRepo.WithContext(ctx)

	user, err := repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, accounts.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := cryptopackage.VerifyPassword(password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if cryptopackage.NeedsRehash(user.Password) {
		if hash, err := cryptopackage.HashPassword(password); err == nil {
			if err := repo.UpdatePassword(user.ID, hash); err != nil {
				log.Printf("[Auth] Failed to upgrade password hash for user %d: %v", user.ID, err)
			} else {
				user.Password = hash
			}
		}
	}
	return user, nil
}

// Login 执行登录操作
func (s *LoginService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", errs.ErrInvalidInput)
	}

	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, expiry, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token, AccessTokenExpiry: expiry}, nil
}
