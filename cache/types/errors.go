// Package types 存放缓存后端共享的错误定义，避免后端包与 cache 包循环依赖
package types

import "errors"

// ErrCacheMiss 缓存未命中错误
var ErrCacheMiss = &cacheMissError{}

type cacheMissError struct{}

func (e *cacheMissError) Error() string {
	return "cache miss"
}

// IsCacheMiss 判断是否为缓存未命中错误
func IsCacheMiss(err error) bool {
	var target *cacheMissError
	return errors.As(err, &target)
}
