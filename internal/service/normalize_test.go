package service

import (
	"testing"

	"github.com/logscope/backend/internal/model"
)

func TestNormalizeLevels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.LogLevel
	}{
		{
			name:  "error-token",
			input: "2024-01-15 10:30:47 ERROR Database connection failed",
			want:  model.LevelError,
		},
		{
			name:  "warning-token",
			input: "2024-01-15 10:30:48 WARNING Retrying connection",
			want:  model.LevelWarn,
		},
		{
			name:  "warn-token",
			input: "[WARN] disk usage at 85%",
			want:  model.LevelWarn,
		},
		{
			name:  "critical-beats-error",
			input: "CRITICAL error in subsystem",
			want:  model.LevelCritical,
		},
		{
			name:  "lowercase-info",
			input: "info service started",
			want:  model.LevelInfo,
		},
		{
			name:  "debug-token",
			input: "DEBUG cache warmed",
			want:  model.LevelDebug,
		},
		{
			name:  "no-token",
			input: "127.0.0.1 - - GET /api/users 200",
			want:  model.LevelUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Normalize([]string{tt.input}, "")
			if len(records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(records))
			}
			if records[0].Level != tt.want {
				t.Fatalf("level = %s, want %s", records[0].Level, tt.want)
			}
		})
	}
}

func TestNormalizeDropsBlankLines(t *testing.T) {
	records := Normalize([]string{"", "   ", "\t", "INFO ok", ""}, "")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Raw != "INFO ok" {
		t.Fatalf("unexpected raw: %q", records[0].Raw)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	lines := []string{"INFO first", "ERROR second", "WARN third"}
	records := Normalize(lines, "api")
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, r := range records {
		if r.Raw != lines[i] {
			t.Fatalf("order broken at %d: %q", i, r.Raw)
		}
		if r.Service != "api" {
			t.Fatalf("service label missing at %d", i)
		}
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	records := Normalize([]string{"2024-01-15 10:30:47 ERROR Database connection failed"}, "")
	if records[0].Timestamp == nil {
		t.Fatal("expected timestamp to be extracted")
	}
	if got := records[0].Timestamp.Format("2006-01-02 15:04:05"); got != "2024-01-15 10:30:47" {
		t.Fatalf("timestamp = %s", got)
	}
	if records[0].Message != "Database connection failed" {
		t.Fatalf("message = %q", records[0].Message)
	}
}

func TestNormalizeMessageWithoutTimestamp(t *testing.T) {
	records := Normalize([]string{"[ERROR] Failed to bind to 0.0.0.0:8080"}, "")
	if records[0].Message != "Failed to bind to 0.0.0.0:8080" {
		t.Fatalf("message = %q", records[0].Message)
	}
}
