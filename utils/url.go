package utils

import (
	"fmt"
	"strings"
)

// BuildFileURL 根据存储路径构造可访问的文件 URL
func BuildFileURL(baseURL, storagePath string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("%s/files/%s", baseURL, strings.TrimLeft(storagePath, "/"))
}
