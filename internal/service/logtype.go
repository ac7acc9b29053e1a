package service

import (
	"regexp"
	"strings"

	"github.com/logscope/backend/internal/model"
)

// 내용 기반 감지는 앞쪽 일부 라인만 본다
const logTypeSampleSize = 20

var ipPattern = regexp.MustCompile(`\d+\.\d+\.\d+\.\d+`)

var (
	securityIndicators    = []string{"sshd", "authentication", "login", "password", "security"}
	applicationIndicators = []string{"deploy", "container", "docker", "kubernetes", "application"}
	systemIndicators      = []string{"kernel", "systemd", "service", "daemon", "process"}
)

// DetectLogType classifies the batch as security/web/application/system logs.
// An explicit context hint wins; otherwise the content of the first lines
// decides, and a batch with no indicators stays general.
func DetectLogType(records []model.LogRecord, contextText string) model.LogType {
	if contextText != "" {
		lower := strings.ToLower(contextText)
		switch {
		case containsAny(lower, []string{"security", "auth", "ssh", "login"}):
			return model.LogTypeSecurity
		case containsAny(lower, []string{"web", "http", "nginx", "apache"}):
			return model.LogTypeWeb
		case containsAny(lower, []string{"app", "deploy"}):
			return model.LogTypeApplication
		case containsAny(lower, []string{"system", "kernel", "service"}):
			return model.LogTypeSystem
		}
	}

	var security, web, application, system int
	for i, record := range records {
		if i >= logTypeSampleSize {
			break
		}
		lower := strings.ToLower(record.Raw)
		if containsAny(lower, securityIndicators) {
			security++
		}
		// 웹 로그는 메서드/프로토콜 토큰이 대문자라 원문 기준으로 본다
		if strings.Contains(record.Raw, "GET") || strings.Contains(record.Raw, "POST") ||
			strings.Contains(record.Raw, "HTTP") || ipPattern.MatchString(record.Raw) {
			web++
		}
		if containsAny(lower, applicationIndicators) {
			application++
		}
		if containsAny(lower, systemIndicators) {
			system++
		}
	}

	best := model.LogTypeGeneral
	bestCount := 0
	for _, candidate := range []struct {
		logType model.LogType
		count   int
	}{
		{model.LogTypeSecurity, security},
		{model.LogTypeWeb, web},
		{model.LogTypeApplication, application},
		{model.LogTypeSystem, system},
	} {
		if candidate.count > bestCount {
			best = candidate.logType
			bestCount = candidate.count
		}
	}
	return best
}

func containsAny(lower string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
