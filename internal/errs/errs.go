// Package errs 定义服务层共享的错误分类。
//
// 服务返回的错误均以 fmt.Errorf("%w: ...") 包装下列哨兵错误之一，
// HTTP 层通过 errors.Is 统一映射为状态码；未包装的错误视为内部错误。
package errs

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated 没有经过验证的调用者
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound 引用的实体不存在
	ErrNotFound = errors.New("not found")
	// ErrForbidden 调用者已验证、资源存在，但策略拒绝
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput 缺少必填字段或字段非法
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict 无法在内部消解的冲突
	ErrConflict = errors.New("conflict")
)

// HTTPStatus 返回错误对应的 HTTP 状态码
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsBusiness 判断是否为业务错误（非内部错误）
func IsBusiness(err error) bool {
	return HTTPStatus(err) != http.StatusInternalServerError
}
