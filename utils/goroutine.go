package utils

import (
	"log"
	"runtime/debug"
)

// SafeGo 启动带 panic 恢复的 goroutine，name 用于日志定位
func SafeGo(name string, fn func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[%s] panic recovered: %v\n%s", name, err, debug.Stack())
			}
		}()
		fn()
	}()
}
