package utils

import (
	"log"
	"strings"
	"unicode"

	"github.com/anoixa/group-gallery/config"
)

func SanitizeLogMessage(msg string) string {
	var sb strings.Builder
	for _, r := range msg {
		if r == 10 || r == 9 {
			sb.WriteRune(r)
		} else if unicode.IsPrint(r) || unicode.IsGraphic(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SanitizeLogEmail 截断并清理邮箱，用于日志输出
func SanitizeLogEmail(email string) string {
	if len(email) > 64 {
		email = email[:64] + "..."
	}
	return SanitizeLogMessage(email)
}

// LogIfDev 仅在开发版本输出日志
func LogIfDev(msg string) {
	if config.IsDevelopment() {
		log.Println(msg)
	}
}

// LogIfDevf 仅在开发版本输出格式化日志
func LogIfDevf(format string, args ...interface{}) {
	if config.IsDevelopment() {
		log.Printf(format, args...)
	}
}
