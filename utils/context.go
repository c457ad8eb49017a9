package utils

import (
	"context"
	"errors"
	"strings"
	"syscall"
)

// IsContextCanceled 判断错误是否来自上下文取消；部分存储客户端只保留错误文本
func IsContextCanceled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || strings.Contains(err.Error(), "context canceled")
}

// IsClientDisconnect 判断是否为客户端中途断开（请求取消或写入时连接被对端关闭）
func IsClientDisconnect(err error) bool {
	if IsContextCanceled(err) {
		return true
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}
