package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server Server
	AI     AIConfig
	GitHub GitHubConfig
	Logs   LogBufferConfig
}

type Server struct {
	Port           string
	AllowedOrigins []string
}

// AIConfig - 외부 LLM 호출 설정
//
// 환경변수:
//   - AI_API_KEY: 미설정 시 패턴 분석 모드로만 동작
//   - AI_MODEL: 사용할 모델 이름
//   - AI_TIMEOUT_SECONDS: LLM 호출 타임아웃 (기본 15초)
type AIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type GitHubConfig struct {
	Token   string
	BaseURL string
}

type LogBufferConfig struct {
	MaxEntries int
}

func Load() Config {
	return Config{
		Server: Server{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		AI: AIConfig{
			APIKey:  os.Getenv("AI_API_KEY"),
			Model:   getenv("AI_MODEL", "gemini-2.0-flash"),
			Timeout: time.Duration(getenvInt("AI_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		GitHub: GitHubConfig{
			Token:   os.Getenv("GITHUB_TOKEN"),
			BaseURL: getenv("GITHUB_API_URL", "https://api.github.com"),
		},
		Logs: LogBufferConfig{
			MaxEntries: getenvInt("LOG_BUFFER_SIZE", 500),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
