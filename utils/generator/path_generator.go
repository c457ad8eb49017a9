package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PathGenerator 分层路径生成器
type PathGenerator struct{}

// NewPathGenerator 创建路径生成器
func NewPathGenerator() *PathGenerator {
	return &PathGenerator{}
}

// StorageIdentifiers 存储标识对
type StorageIdentifiers struct {
	Identifier  string // 业务标识符，如 3f2a...（不含扩展名）
	StoragePath string // 存储路径，如 media/image/2024/01/15/3f2a....jpg
}

// NewIdentifier 生成随机业务标识符
func (pg *PathGenerator) NewIdentifier() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateMediaIdentifiers 生成媒体文件的 identifier 和 storage_path
// kind 为 image 或 video
func (pg *PathGenerator) GenerateMediaIdentifiers(identifier, kind, ext string, uploadTime time.Time) StorageIdentifiers {
	datePath := uploadTime.Format("2006/01/02")

	return StorageIdentifiers{
		Identifier:  identifier,
		StoragePath: fmt.Sprintf("media/%s/%s/%s%s", strings.ToLower(kind), datePath, identifier, ext),
	}
}
