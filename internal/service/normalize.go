// 원시 로그 라인을 model.LogRecord로 정규화하는 로직 정의
//
// 처리 규칙:
//  1. 공백뿐인 라인은 버린다 (total 카운트에서 제외)
//  2. 레벨 토큰은 후보 목록을 순서대로 대소문자 무시 매칭, 첫 매칭 승리
//  3. 어떤 레벨에도 매칭되지 않으면 UNKNOWN으로 분류 (실패 없음)
//  4. 타임스탬프는 best-effort로 추출, 실패해도 무시

package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/logscope/backend/internal/model"
)

// levelCandidates - 순서가 계약이다. WARNING이 WARN보다 먼저 와야
// "WARNING" 라인이 "WARN" 접두 매칭으로 흡수되지 않는다.
var levelCandidates = []struct {
	token string
	level model.LogLevel
}{
	{"CRITICAL", model.LevelCritical},
	{"ERROR", model.LevelError},
	{"WARNING", model.LevelWarn},
	{"WARN", model.LevelWarn},
	{"INFO", model.LevelInfo},
	{"DEBUG", model.LevelDebug},
}

var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}`)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Normalize converts raw log lines into LogRecords, preserving input order.
// Blank lines are dropped. Malformed lines degrade to UNKNOWN instead of failing.
func Normalize(lines []string, service string) []model.LogRecord {
	records := make([]model.LogRecord, 0, len(lines))
	for _, line := range lines {
		raw := strings.TrimSpace(line)
		if raw == "" {
			continue
		}
		records = append(records, newRecord(raw, service))
	}
	return records
}

func newRecord(raw, service string) model.LogRecord {
	record := model.LogRecord{
		Raw:     raw,
		Level:   model.LevelUnknown,
		Message: raw,
		Service: service,
	}

	upper := strings.ToUpper(raw)
	matched := ""
	for _, candidate := range levelCandidates {
		if strings.Contains(upper, candidate.token) {
			record.Level = candidate.level
			matched = candidate.token
			break
		}
	}

	if ts := extractTimestamp(raw); ts != nil {
		record.Timestamp = ts
	}

	record.Message = extractMessage(raw, matched)
	return record
}

func extractTimestamp(raw string) *time.Time {
	match := timestampPattern.FindString(raw)
	if match == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, match); err == nil {
			return &t
		}
	}
	return nil
}

// extractMessage strips the timestamp prefix and the matched level token,
// leaving the human-readable remainder. Falls back to the raw line.
func extractMessage(raw, levelToken string) string {
	msg := raw

	if match := timestampPattern.FindStringIndex(msg); match != nil && match[0] == 0 {
		msg = msg[match[1]:]
	}

	if levelToken != "" {
		upper := strings.ToUpper(msg)
		if idx := strings.Index(upper, levelToken); idx >= 0 {
			before := strings.TrimRight(msg[:idx], " [")
			after := strings.TrimLeft(msg[idx+len(levelToken):], "] :-")
			if before == "" {
				msg = after
			} else {
				msg = strings.TrimSpace(before + " " + after)
			}
		}
	}

	msg = strings.TrimSpace(msg)
	if msg == "" {
		return raw
	}
	return msg
}
