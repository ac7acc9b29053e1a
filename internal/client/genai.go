package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/logscope/backend/internal/config"
	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/template"
	"google.golang.org/genai"
)

// maxPromptLines - API 비용/지연을 고려한 프롬프트 라인 상한
const maxPromptLines = 50

type AIClientConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type AIClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewAIClient(cfg config.AIConfig) (*AIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	clientCfg := AIClientConfig{APIKey: cfg.APIKey, Model: cfg.Model, Timeout: cfg.Timeout}
	if clientCfg.Timeout <= 0 {
		clientCfg.Timeout = 15 * time.Second
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: clientCfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &AIClient{client: client, model: clientCfg.Model, timeout: clientCfg.Timeout}, nil
}

func (c *AIClient) Model() string {
	return c.model
}

// AnalyzeLogs requests a structured health analysis from the LLM.
// Any failure (timeout, transport, schema) is returned as an error; the
// caller owns the fallback to pattern analysis.
func (c *AIClient) AnalyzeLogs(ctx context.Context, logs []string, contextText string) (*model.AIAnalysis, error) {
	if len(logs) > maxPromptLines {
		logs = logs[:maxPromptLines]
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := template.RenderAnalysisPrompt(logs, contextText)
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send request to AI model: %w", err)
	}

	text := res.Text()
	if text == "" {
		return nil, fmt.Errorf("empty AI response")
	}

	return parseAIAnalysis(text)
}

// parseAIAnalysis validates the model output against the fixed schema.
// 스키마를 벗어난 응답은 에러로 취급해 패턴 폴백을 태운다.
func parseAIAnalysis(text string) (*model.AIAnalysis, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var analysis model.AIAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	analysis.Status = model.Status(strings.ToUpper(string(analysis.Status)))
	analysis.Severity = model.Severity(strings.ToUpper(string(analysis.Severity)))

	switch analysis.Status {
	case model.StatusHealthy, model.StatusWarning, model.StatusError, model.StatusCritical:
	default:
		return nil, fmt.Errorf("invalid status in AI response: %q", analysis.Status)
	}
	switch analysis.Severity {
	case model.SeverityLow, model.SeverityMedium, model.SeverityHigh:
	default:
		return nil, fmt.Errorf("invalid severity in AI response: %q", analysis.Severity)
	}

	if analysis.Recommendations == nil {
		analysis.Recommendations = []string{}
	}
	return &analysis, nil
}
