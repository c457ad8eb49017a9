package format

import (
	"strconv"
	"strings"
)

var units = []string{"B", "KB", "MB", "GB", "TB"}

// HumanReadableSize 把字节数格式化为 "1.5 MB" 这样的形式，保留一位小数并去掉多余的 ".0"
func HumanReadableSize(bytes int64) string {
	if bytes < 1024 {
		return strconv.FormatInt(bytes, 10) + " B"
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	s := strings.TrimSuffix(strconv.FormatFloat(value, 'f', 1, 64), ".0")
	return s + " " + units[unit]
}
