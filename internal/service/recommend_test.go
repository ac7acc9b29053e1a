package service

import (
	"testing"

	"github.com/logscope/backend/internal/model"
)

func TestRecommendDatabaseFirst(t *testing.T) {
	summary := model.AnalysisSummary{Total: 3, Errors: 2, Warnings: 1}
	triggers := Triggers{DatabaseFailure: true, ConnectionTimeout: true}

	recs := Recommend(summary, triggers)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d: %v", len(recs), recs)
	}
	if recs[0] != RecInvestigateDatabase {
		t.Fatalf("database advice must come first, got %q", recs[0])
	}
	if recs[1] != RecCheckNetwork {
		t.Fatalf("expected network advice second, got %q", recs[1])
	}
}

func TestRecommendGenericErrorFallback(t *testing.T) {
	summary := model.AnalysisSummary{Total: 5, Errors: 1}

	recs := Recommend(summary, Triggers{})
	if len(recs) != 1 || recs[0] != RecReviewErrorLogs {
		t.Fatalf("expected generic error advice, got %v", recs)
	}
}

func TestRecommendWarningsOnly(t *testing.T) {
	summary := model.AnalysisSummary{Total: 4, Warnings: 2}

	recs := Recommend(summary, Triggers{})
	if len(recs) != 1 || recs[0] != RecMonitorWarnings {
		t.Fatalf("expected monitoring advice, got %v", recs)
	}
}

func TestRecommendHealthyBatchIsEmpty(t *testing.T) {
	recs := Recommend(model.AnalysisSummary{Total: 2}, Triggers{})
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %v", recs)
	}
}

func TestRecommendDeduplicates(t *testing.T) {
	summary := model.AnalysisSummary{Total: 10, Errors: 4}
	triggers := Triggers{AuthFailure: true}

	recs := Recommend(summary, triggers)
	seen := make(map[string]int)
	for _, r := range recs {
		seen[r]++
		if seen[r] > 1 {
			t.Fatalf("duplicate recommendation: %q", r)
		}
	}
}

func TestRecommendIncludesTypeFindings(t *testing.T) {
	summary := model.AnalysisSummary{Total: 6, Errors: 3}
	triggers := Triggers{
		DatabaseFailure: true,
		TypeFindings: []TypeFinding{
			{Signal: "auth_failure", Label: "authentication failures", Count: 4,
				Recommendation: "Harden SSH access: enable fail2ban and disable password authentication"},
		},
	}

	recs := Recommend(summary, triggers)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", recs)
	}
	if recs[0] != RecInvestigateDatabase {
		t.Fatalf("specific trigger advice must come first, got %q", recs[0])
	}
	if recs[1] != triggers.TypeFindings[0].Recommendation {
		t.Fatalf("expected type finding advice second, got %q", recs[1])
	}
	for _, r := range recs {
		if r == RecReviewErrorLogs {
			t.Fatal("generic advice must not appear alongside type findings")
		}
	}
}

func TestPatternRootCauseFromFindingsAndPatterns(t *testing.T) {
	summary := model.AnalysisSummary{Total: 4, Errors: 2, Criticals: 1}
	triggers := Triggers{
		Patterns: []string{"failed", "out of memory"},
		TypeFindings: []TypeFinding{
			{Signal: "resource_issue", Label: "resource problems", Count: 1},
		},
	}

	got := PatternRootCause(summary, model.LogTypeSystem, triggers)
	want := "1 resource problems; 1 critical signals; 2 error lines; matched patterns: failed, out of memory"
	if got != want {
		t.Fatalf("root cause = %q, want %q", got, want)
	}
}

func TestPatternRootCauseHealthyBatch(t *testing.T) {
	got := PatternRootCause(model.AnalysisSummary{Total: 2}, model.LogTypeWeb, Triggers{})
	if got != "Normal web activity patterns" {
		t.Fatalf("root cause = %q", got)
	}
}

func TestPatternRootCauseWarningsOnly(t *testing.T) {
	got := PatternRootCause(model.AnalysisSummary{Total: 3, Warnings: 2}, model.LogTypeGeneral, Triggers{})
	if got != "2 warning lines in general logs" {
		t.Fatalf("root cause = %q", got)
	}
}

func TestRecommendNoGenericWhenSpecificPresent(t *testing.T) {
	summary := model.AnalysisSummary{Total: 3, Errors: 1}
	triggers := Triggers{DatabaseFailure: true}

	recs := Recommend(summary, triggers)
	for _, r := range recs {
		if r == RecReviewErrorLogs {
			t.Fatal("generic advice must not appear alongside specific advice")
		}
	}
}
