package service

import (
	"strings"

	"github.com/logscope/backend/internal/model"
)

// RuleConfig holds the substring tables and thresholds driving the pattern
// classifier. The defaults were extracted from observed production behavior and
// are deliberately injectable rather than frozen constants.
type RuleConfig struct {
	ErrorSubstrings    []string
	WarningSubstrings  []string
	CriticalSubstrings []string

	// TypeSignals: 감지된 로그 타입별 추가 시그널 테이블
	TypeSignals map[model.LogType][]TypeSignal

	// HighErrorFraction: errors/total 이 이 값을 넘으면 severity HIGH
	// MediumWarningFraction: warnings/total 이 이 값을 넘으면 severity MEDIUM
	HighErrorFraction     float64
	MediumWarningFraction float64
}

// TypeSignal is one log-type specific pattern. Hitting it at least MinCount
// times across the batch produces a finding with its own recommendation.
type TypeSignal struct {
	Name           string
	Label          string
	Substrings     []string
	MinCount       int
	Recommendation string
}

func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		ErrorSubstrings: []string{
			"failed",
			"failure",
			"exception",
			"timeout",
			"connection refused",
			"connection reset",
			"panic",
			"stack trace",
		},
		WarningSubstrings: []string{
			"retry",
			"retrying",
			"deprecated",
			"slow",
			"disk space",
			"high memory",
		},
		CriticalSubstrings: []string{
			"out of memory",
			"crash",
			"segmentation fault",
			"kernel panic",
			"data loss",
		},
		TypeSignals: map[model.LogType][]TypeSignal{
			model.LogTypeSecurity: {
				{
					Name:           "auth_failure",
					Label:          "authentication failures",
					Substrings:     []string{"authentication failure", "failed password", "invalid user"},
					MinCount:       3,
					Recommendation: "Harden SSH access: enable fail2ban and disable password authentication",
				},
				{
					Name:           "unknown_user",
					Label:          "unknown user attempts",
					Substrings:     []string{"user unknown"},
					MinCount:       1,
					Recommendation: "Audit login attempts for unknown accounts",
				},
			},
			model.LogTypeWeb: {
				{
					Name:           "server_error",
					Label:          "server errors",
					Substrings:     []string{`" 500`, `" 502`, `" 503`, "internal server error", "service unavailable"},
					MinCount:       1,
					Recommendation: "Check upstream application health behind the web tier",
				},
				{
					Name:           "slow_request",
					Label:          "slow requests",
					Substrings:     []string{"slow response", "high response time"},
					MinCount:       1,
					Recommendation: "Profile slow endpoints and review caching",
				},
			},
			model.LogTypeApplication: {
				{
					Name:           "deployment_issue",
					Label:          "deployment issues",
					Substrings:     []string{"container failed", "image pull", "rolling back", "rollback"},
					MinCount:       1,
					Recommendation: "Verify image availability and deployment configuration",
				},
				{
					Name:           "database_issue",
					Label:          "database problems",
					Substrings:     []string{"database", "deadlock", "connection pool"},
					MinCount:       1,
					Recommendation: "Check database service status and connection pool settings",
				},
			},
			model.LogTypeSystem: {
				{
					Name:           "service_failure",
					Label:          "service failures",
					Substrings:     []string{"service failed", "failed to start", "main process exited"},
					MinCount:       1,
					Recommendation: "Inspect failed units with systemctl status and journalctl",
				},
				{
					Name:           "resource_issue",
					Label:          "resource problems",
					Substrings:     []string{"out of memory", "disk full", "disk space"},
					MinCount:       1,
					Recommendation: "Check host resources: disk, memory, and CPU",
				},
			},
		},
		HighErrorFraction:     0.5,
		MediumWarningFraction: 1.0 / 3.0,
	}
}

// Triggers - 분류 중 발견된 추천 트리거. Recommendation Engine의 입력이 된다.
type Triggers struct {
	DatabaseFailure   bool
	ConnectionTimeout bool
	AuthFailure       bool

	// Patterns: 매칭된 설정 substring들, 최초 발견 순서 유지.
	// 레벨 토큰만으로 분류된 라인의 매칭도 포함한다.
	Patterns []string

	// TypeFindings: 로그 타입별 시그널 (임계치 이상 적중한 것만)
	TypeFindings []TypeFinding
}

// TypeFinding is a type-specific signal that crossed its threshold.
type TypeFinding struct {
	Signal         string
	Label          string
	Count          int
	Recommendation string
}

// Classifier scans normalized records for severity signals and produces the
// summary counts plus the (status, severity) verdict.
type Classifier struct {
	rules RuleConfig
}

func NewClassifier(rules RuleConfig) *Classifier {
	return &Classifier{rules: rules}
}

// Classify applies the counted-once rule: a record contributes to at most one
// of error/warning. Criticals are a subset of errors and only escalate the
// verdict, they are not summed separately into the total. Substring matching
// always runs on every line so the pattern list stays complete even when the
// level token alone already decided the class.
func (c *Classifier) Classify(records []model.LogRecord, logType model.LogType) (model.AnalysisSummary, model.Verdict, Triggers) {
	summary := model.AnalysisSummary{Total: len(records)}
	triggers := Triggers{}
	seen := make(map[string]bool)

	signals := c.rules.TypeSignals[logType]
	signalCounts := make([]int, len(signals))

	for _, record := range records {
		lower := strings.ToLower(record.Raw)

		criticalHit := c.matchAny(lower, c.rules.CriticalSubstrings, seen, &triggers.Patterns)
		errorHit := c.matchAny(lower, c.rules.ErrorSubstrings, seen, &triggers.Patterns)
		warningHit := c.matchAny(lower, c.rules.WarningSubstrings, seen, &triggers.Patterns)

		for i, signal := range signals {
			if containsAny(lower, signal.Substrings) {
				signalCounts[i]++
			}
		}

		isCritical := record.Level == model.LevelCritical || criticalHit
		isError := isCritical || record.Level == model.LevelError || errorHit

		if isError {
			summary.Errors++
			if isCritical {
				summary.Criticals++
			}
			c.collectTriggers(lower, &triggers)
			continue
		}

		if record.Level == model.LevelWarn || warningHit {
			summary.Warnings++
		}
	}

	for i, signal := range signals {
		threshold := signal.MinCount
		if threshold <= 0 {
			threshold = 1
		}
		if signalCounts[i] >= threshold {
			triggers.TypeFindings = append(triggers.TypeFindings, TypeFinding{
				Signal:         signal.Name,
				Label:          signal.Label,
				Count:          signalCounts[i],
				Recommendation: signal.Recommendation,
			})
		}
	}

	return summary, c.verdict(summary), triggers
}

// matchAny reports whether the line contains any of the given substrings and
// records every match in the ordered pattern list.
func (c *Classifier) matchAny(lower string, substrings []string, seen map[string]bool, patterns *[]string) bool {
	matched := false
	for _, sub := range substrings {
		if strings.Contains(lower, sub) {
			matched = true
			if !seen[sub] {
				seen[sub] = true
				*patterns = append(*patterns, sub)
			}
		}
	}
	return matched
}

func (c *Classifier) collectTriggers(lower string, triggers *Triggers) {
	if strings.Contains(lower, "database") {
		triggers.DatabaseFailure = true
	}
	if strings.Contains(lower, "connection") && strings.Contains(lower, "timeout") {
		triggers.ConnectionTimeout = true
	}
	if strings.Contains(lower, "auth") || strings.Contains(lower, "login") {
		triggers.AuthFailure = true
	}
}

// verdict - 상태는 우선순위 매칭 (CRITICAL > ERROR > WARNING > HEALTHY),
// 심각도는 비율 기준 에스컬레이션
func (c *Classifier) verdict(summary model.AnalysisSummary) model.Verdict {
	verdict := model.Verdict{Status: model.StatusHealthy, Severity: model.SeverityLow}

	switch {
	case summary.Criticals > 0:
		verdict.Status = model.StatusCritical
	case summary.Errors > 0:
		verdict.Status = model.StatusError
	case summary.Warnings > 0:
		verdict.Status = model.StatusWarning
	}

	total := float64(summary.Total)
	switch {
	case summary.Criticals > 0 || (total > 0 && float64(summary.Errors)/total > c.rules.HighErrorFraction):
		verdict.Severity = model.SeverityHigh
	case summary.Errors > 0 || (total > 0 && float64(summary.Warnings)/total > c.rules.MediumWarningFraction):
		verdict.Severity = model.SeverityMedium
	}

	return verdict
}
