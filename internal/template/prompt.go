// Package template provides AI prompt template rendering.
//
// 지원하는 변수 형식:
//
//	{{context}}, {{log_count}}, {{logs}}
package template

import (
	"strconv"
	"strings"
)

const analysisPromptTemplate = `You are an expert site reliability engineer analyzing production system logs.

Context: {{context}}

Logs to analyze ({{log_count}} lines):
{{logs}}

Classify the overall health of this log batch and respond with ONLY a valid JSON object, no markdown, in exactly this schema:
{
  "status": "HEALTHY|WARNING|ERROR|CRITICAL",
  "severity": "LOW|MEDIUM|HIGH",
  "confidence": 0.95,
  "root_cause": "specific technical root cause with evidence from the logs",
  "recommendations": ["specific, immediately actionable recommendation"]
}

Rules:
- status must reflect the worst issue present in the batch
- recommendations must be specific and technical, not generic advice like "check the logs"
- include exact commands or configuration values where the logs make them obvious`

// RenderAnalysisPrompt - 프롬프트 템플릿의 변수를 실제 값으로 치환
func RenderAnalysisPrompt(logs []string, contextText string) string {
	if contextText == "" {
		contextText = "Production system log analysis"
	}
	return strings.NewReplacer(
		"{{context}}", contextText,
		"{{log_count}}", strconv.Itoa(len(logs)),
		"{{logs}}", strings.Join(logs, "\n"),
	).Replace(analysisPromptTemplate)
}
