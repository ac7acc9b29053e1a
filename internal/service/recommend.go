package service

import (
	"fmt"
	"strings"

	"github.com/logscope/backend/internal/model"
)

// Recommendation texts. Kept as named constants so tests and the dashboard
// can match on exact strings.
const (
	RecInvestigateDatabase = "Investigate database connection immediately"
	RecCheckNetwork        = "Check network connectivity and increase timeout thresholds"
	RecReviewAuth          = "Review authentication service and recent credential changes"
	RecReviewErrorLogs     = "Review error logs for root cause"
	RecMonitorWarnings     = "Monitor the flagged services; no immediate action required"
)

// Recommend maps detected triggers to an ordered list of recommendations,
// most urgent first. Each distinct message appears at most once; specific
// failure advice always precedes the generic fallbacks.
func Recommend(summary model.AnalysisSummary, triggers Triggers) []string {
	recs := []string{}
	added := make(map[string]bool)
	add := func(msg string) {
		if !added[msg] {
			added[msg] = true
			recs = append(recs, msg)
		}
	}

	if triggers.DatabaseFailure {
		add(RecInvestigateDatabase)
	}
	if triggers.ConnectionTimeout {
		add(RecCheckNetwork)
	}
	if triggers.AuthFailure {
		add(RecReviewAuth)
	}
	for _, finding := range triggers.TypeFindings {
		add(finding.Recommendation)
	}

	if len(recs) == 0 && summary.Errors > 0 {
		add(RecReviewErrorLogs)
	}
	if summary.Errors == 0 && summary.Warnings > 0 {
		add(RecMonitorWarnings)
	}

	return recs
}

// PatternRootCause summarizes what the pattern engine saw: type-specific
// findings first, then the severity counts and the matched substrings. A quiet
// batch reads as normal activity for its detected type.
func PatternRootCause(summary model.AnalysisSummary, logType model.LogType, triggers Triggers) string {
	parts := []string{}
	for _, finding := range triggers.TypeFindings {
		parts = append(parts, fmt.Sprintf("%d %s", finding.Count, finding.Label))
	}
	if summary.Criticals > 0 {
		parts = append(parts, fmt.Sprintf("%d critical signals", summary.Criticals))
	}
	if summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error lines", summary.Errors))
	}
	if len(triggers.Patterns) > 0 {
		parts = append(parts, "matched patterns: "+strings.Join(triggers.Patterns, ", "))
	}

	if len(parts) == 0 {
		if summary.Warnings > 0 {
			return fmt.Sprintf("%d warning lines in %s logs", summary.Warnings, logType)
		}
		return fmt.Sprintf("Normal %s activity patterns", logType)
	}
	return strings.Join(parts, "; ")
}
