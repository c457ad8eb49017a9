package config

// 构建时通过 -ldflags "-X" 注入
var (
	Version    = "dev"
	CommitHash = ""
)

// IsProduction 发布构建：Version 为 release 且带有提交哈希
func IsProduction() bool {
	return Version == "release" && CommitHash != ""
}

// IsDevelopment 本地构建
func IsDevelopment() bool {
	return Version == "dev"
}

// BuildInfo 供 /version 接口返回
func BuildInfo() map[string]string {
	commit := CommitHash
	if commit == "" {
		commit = "n/a"
	}
	return map[string]string{"version": Version, "commit": commit}
}
