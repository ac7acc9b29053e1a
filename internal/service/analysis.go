// 로그 분석 비즈니스 로직 정의
//
// 처리 흐름:
//  1. 원시 라인 정규화 (빈 라인 제거, 레벨/타임스탬프 추출)
//  2. 로그 타입 감지 후 패턴 분류기로 summary + verdict 산출
//  3. 트리거/타입 시그널 기반 추천과 근본 원인 요약 생성
//  4. AI 클라이언트가 있으면 외부 분석 시도
//     - 성공: verdict/추천을 AI 결과로 대체 (카운트는 로컬 값 유지)
//     - 실패: 패턴 결과로 조용히 폴백 (호출자에게 에러 노출 없음)
//  5. 최근 로그 버퍼 적재 + 대시보드 허브로 이벤트 발행

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/notify"
)

var ErrInvalidAnalysisRequest = errors.New("invalid analysis request")

// AIAnalyzer is the boundary to the external LLM. Implementations must return
// an error on any failure; the service decides the fallback policy.
type AIAnalyzer interface {
	AnalyzeLogs(ctx context.Context, logs []string, contextText string) (*model.AIAnalysis, error)
}

// Publisher - 분석 완료 이벤트를 대시보드 쪽으로 내보내는 채널 경계
type Publisher interface {
	Publish(event notify.Event)
}

// AnalysisService 구조체 정의
type AnalysisService struct {
	classifier *Classifier
	ai         AIAnalyzer
	store      *LogStore
	hub        Publisher
}

// NewAnalysisService 객체 생성. ai와 hub는 nil 허용 (패턴 전용 / 알림 없음).
func NewAnalysisService(rules RuleConfig, ai AIAnalyzer, store *LogStore, hub Publisher) *AnalysisService {
	return &AnalysisService{
		classifier: NewClassifier(rules),
		ai:         ai,
		store:      store,
		hub:        hub,
	}
}

// AIEnabled reports whether an external AI client is wired in.
func (s *AnalysisService) AIEnabled() bool {
	return s.ai != nil
}

// Analyze runs the full pipeline for one request. Stateless per request; the
// same batch always yields the same pattern-mode result.
func (s *AnalysisService) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.AnalysisResult, error) {
	start := time.Now()

	records := Normalize(req.Logs, req.Service)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: logs must contain at least one non-empty line", ErrInvalidAnalysisRequest)
	}

	logType := DetectLogType(records, req.Context)
	summary, verdict, triggers := s.classifier.Classify(records, logType)

	result := &model.AnalysisResult{
		Summary:         summary,
		Verdict:         verdict,
		Recommendations: Recommend(summary, triggers),
		RootCause:       PatternRootCause(summary, logType, triggers),
		LogType:         logType,
		Source:          model.SourcePattern,
	}

	if s.ai != nil {
		contextText := req.Context
		if contextText == "" {
			contextText = req.Service
		}

		aiResult, err := s.ai.AnalyzeLogs(ctx, req.Logs, contextText)
		if err != nil {
			// AI 실패는 호출자에게 노출하지 않는다
			log.Printf("AI analysis failed, falling back to pattern analysis: %v", err)
		} else {
			result.Verdict = model.Verdict{Status: aiResult.Status, Severity: aiResult.Severity}
			result.Recommendations = aiResult.Recommendations
			result.RootCause = aiResult.RootCause
			result.Source = model.SourceAI
		}
	}

	if s.store != nil {
		s.store.Append(records)
	}

	result.ProcessingTime = time.Since(start)

	if s.hub != nil {
		s.hub.Publish(notify.Event{
			Service:   req.Service,
			Status:    result.Verdict.Status,
			Severity:  result.Verdict.Severity,
			Total:     summary.Total,
			Errors:    summary.Errors,
			Warnings:  summary.Warnings,
			Source:    result.Source,
			Timestamp: time.Now(),
		})
	}

	return result, nil
}
