package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	minSecretLength = 32
	tokenTypeAccess = "access"
)

// ErrInvalidToken 令牌无效或已过期
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenConfig 保存 JWT 配置
type TokenConfig struct {
	Secret    []byte
	ExpiresIn time.Duration
}

// TokenClaims JWT 令牌声明
type TokenClaims struct {
	UserID uint
	Email  string
	Type   string
	Exp    int64
	Iat    int64
}

// JWTService 签发与校验访问令牌
type JWTService struct {
	config TokenConfig
	now    func() time.Time
}

// NewJWTService 创建新的 JWT 服务
func NewJWTService(secret string, expiresIn time.Duration) (*JWTService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("JWT secret must be at least %d characters long, got %d", minSecretLength, len(secret))
	}
	if expiresIn <= 0 {
		return nil, fmt.Errorf("invalid JWT access token TTL: %v", expiresIn)
	}
	return &JWTService{
		config: TokenConfig{Secret: []byte(secret), ExpiresIn: expiresIn},
		now:    time.Now,
	}, nil
}

// GenerateAccessToken 生成访问令牌
func (s *JWTService) GenerateAccessToken(userID uint, email string) (string, time.Time, error) {
	now := s.now()
	expiry := now.Add(s.config.ExpiresIn)
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"type":    tokenTypeAccess,
		"exp":     expiry.Unix(),
		"iat":     now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiry, nil
}

// ParseToken 解析和验证 JWT 令牌
func (s *JWTService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.config.Secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractClaims 解析访问令牌并提取声明
func (s *JWTService) ExtractClaims(tokenString string) (*TokenClaims, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != tokenTypeAccess {
		return nil, fmt.Errorf("%w: not an access token", ErrInvalidToken)
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat <= 0 {
		return nil, fmt.Errorf("%w: user_id missing", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	expFloat, _ := claims["exp"].(float64)
	iatFloat, _ := claims["iat"].(float64)

	return &TokenClaims{
		UserID: uint(userIDFloat),
		Email:  email,
		Type:   tokenType,
		Exp:    int64(expFloat),
		Iat:    int64(iatFloat),
	}, nil
}
