package cryptopackage

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword 为新账户生成密码哈希（Argon2id）
func HashPassword(password string) (string, error) {
	return GenerateFromPassword(password)
}

// VerifyPassword 校验密码，兼容旧系统导入的 bcrypt 哈希
func VerifyPassword(password, encodedHash string) (bool, error) {
	if IsBcryptHash(encodedHash) {
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
	return ComparePasswordAndHash(password, encodedHash)
}

// IsBcryptHash 判断是否为 bcrypt 哈希（$2a$ / $2b$ / $2y$）
func IsBcryptHash(encodedHash string) bool {
	return strings.HasPrefix(encodedHash, "$2a$") ||
		strings.HasPrefix(encodedHash, "$2b$") ||
		strings.HasPrefix(encodedHash, "$2y$")
}

// NeedsRehash 旧格式哈希在成功登录后应升级为 Argon2id
func NeedsRehash(encodedHash string) bool {
	return !strings.HasPrefix(encodedHash, "$argon2id$")
}
