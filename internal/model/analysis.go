package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// LogLevel - 정규화된 로그 레벨
type LogLevel string

const (
	LevelCritical LogLevel = "CRITICAL"
	LevelError    LogLevel = "ERROR"
	LevelWarn     LogLevel = "WARN"
	LevelInfo     LogLevel = "INFO"
	LevelDebug    LogLevel = "DEBUG"
	LevelUnknown  LogLevel = "UNKNOWN"
)

// Status - 로그 배치 전체의 건강 상태
type Status string

const (
	StatusHealthy  Status = "HEALTHY"
	StatusWarning  Status = "WARNING"
	StatusError    Status = "ERROR"
	StatusCritical Status = "CRITICAL"
)

// Severity - 심각도 등급
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// LogType - 배치가 어떤 계열의 로그인지 (컨텍스트 키워드와 내용으로 감지)
type LogType string

const (
	LogTypeGeneral     LogType = "general"
	LogTypeSecurity    LogType = "security"
	LogTypeWeb         LogType = "web"
	LogTypeApplication LogType = "application"
	LogTypeSystem      LogType = "system"
)

// AnalysisSource - 최종 판정을 만든 주체 (패턴 엔진 또는 외부 AI)
type AnalysisSource string

const (
	SourcePattern AnalysisSource = "pattern"
	SourceAI      AnalysisSource = "ai"
)

// LogRecord - 정규화된 로그 한 줄. 생성 후 변경하지 않는다.
type LogRecord struct {
	Raw       string     `json:"raw"`
	Level     LogLevel   `json:"level"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Service   string     `json:"service,omitempty"`
}

// AnalysisSummary - 분류 카운트. Errors + Warnings <= Total 을 항상 만족한다.
type AnalysisSummary struct {
	Total     int `json:"total_entries"`
	Errors    int `json:"error_count"`
	Warnings  int `json:"warning_count"`
	Criticals int `json:"critical_count"`
}

// Verdict - 배치 건강 판정 (상태 + 심각도)
type Verdict struct {
	Status   Status   `json:"status"`
	Severity Severity `json:"severity"`
}

// AIAnalysis - 외부 LLM이 반환하는 구조화된 분석 결과
type AIAnalysis struct {
	Status          Status   `json:"status"`
	Severity        Severity `json:"severity"`
	RootCause       string   `json:"root_cause"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisResult - 요청 단위로 조립되는 최종 분석 결과
type AnalysisResult struct {
	Summary         AnalysisSummary
	Verdict         Verdict
	Recommendations []string
	RootCause       string
	LogType         LogType
	Source          AnalysisSource
	ProcessingTime  time.Duration
}

// Response - 프론트엔드에 내려주는 응답 스키마로 변환
func (r *AnalysisResult) Response(service string) AnalysisResponse {
	recs := r.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return AnalysisResponse{
		Status:          r.Verdict.Status,
		Severity:        r.Verdict.Severity,
		TotalEntries:    r.Summary.Total,
		ErrorCount:      r.Summary.Errors,
		WarningCount:    r.Summary.Warnings,
		Recommendations: recs,
		RootCause:       r.RootCause,
		LogType:         r.LogType,
		Source:          r.Source,
		ProcessingTime:  r.ProcessingTime.Round(time.Millisecond).String(),
		Service:         service,
	}
}

type AnalysisResponse struct {
	Status          Status         `json:"status"`
	Severity        Severity       `json:"severity"`
	TotalEntries    int            `json:"total_entries"`
	ErrorCount      int            `json:"error_count"`
	WarningCount    int            `json:"warning_count"`
	Recommendations []string       `json:"recommendations"`
	RootCause       string         `json:"root_cause,omitempty"`
	LogType         LogType        `json:"log_type,omitempty"`
	Source          AnalysisSource `json:"source"`
	ProcessingTime  string         `json:"processing_time"`
	Service         string         `json:"service,omitempty"`
}

type AnalysisRequest struct {
	Logs    []string `json:"logs"`
	Context string   `json:"context"`
	Service string   `json:"service"`
}

// UnmarshalJSON - logs는 문자열 배열 또는 한 덩어리 문자열(개행 구분) 둘 다 허용
func (r *AnalysisRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Logs    json.RawMessage `json:"logs"`
		Context string          `json:"context"`
		Service string          `json:"service"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Context = raw.Context
	r.Service = raw.Service
	r.Logs = nil

	if len(raw.Logs) == 0 || string(raw.Logs) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw.Logs, &list); err == nil {
		r.Logs = list
		return nil
	}

	var blob string
	if err := json.Unmarshal(raw.Logs, &blob); err == nil {
		r.Logs = strings.Split(strings.ReplaceAll(blob, "\r\n", "\n"), "\n")
		return nil
	}

	return errors.New("logs must be a list of strings or a string")
}

// RepoAnalysisRequest - GitHub 저장소 컨텍스트를 포함한 분석 요청
type RepoAnalysisRequest struct {
	RepoURL string   `json:"repo_url"`
	Logs    []string `json:"logs"`
	Context string   `json:"context"`
}
