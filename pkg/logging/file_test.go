package logging

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLogger(t *testing.T, config FileLoggerConfig) (*FileLogger, string) {
	t.Helper()
	if config.Path == "" {
		config.Path = filepath.Join(t.TempDir(), "mmv.log")
	}
	logger, err := NewFileLogger(config)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	return logger, config.Path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "mmv.log")
	logger, _ := newTestLogger(t, FileLoggerConfig{Path: logPath, Format: FormatText, Level: InfoLevel})
	defer logger.Close()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestFileLogger_LevelFilter(t *testing.T) {
	logger, path := newTestLogger(t, FileLoggerConfig{Format: FormatText, Level: WarnLevel})
	ctx := context.Background()

	logger.Debug(ctx, "debug message", nil)
	logger.Info(ctx, "info message", nil)
	logger.Warn(ctx, "warn message", nil)
	logger.Error(ctx, "error message", nil, nil)
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "[WARN] warn message") {
		t.Errorf("line 0 = %q, want warn message", lines[0])
	}
	if !strings.Contains(lines[1], "[ERROR] error message") {
		t.Errorf("line 1 = %q, want error message", lines[1])
	}
}

func TestFileLogger_TextFormat(t *testing.T) {
	logger, path := newTestLogger(t, FileLoggerConfig{Format: FormatText, Level: DebugLevel})

	logger.Error(context.Background(), "rename failed", errors.New("permission denied"),
		Fields{"source": "a.txt", "destination": "b.txt"})
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d", len(lines))
	}

	line := lines[0]
	for _, want := range []string{"[ERROR] rename failed", `error="permission denied"`, "destination=b.txt source=a.txt"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q should contain %q", line, want)
		}
	}
}

func TestFileLogger_JSONFormat(t *testing.T) {
	logger, path := newTestLogger(t, FileLoggerConfig{Format: FormatJSON, Level: InfoLevel})

	logger.Info(context.Background(), "moved", Fields{"source": "dir/note.txt"})
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d", len(lines))
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["message"] != "moved" {
		t.Errorf("message = %v, want moved", entry["message"])
	}
	if entry["source"] != "dir/note.txt" {
		t.Errorf("source = %v, want dir/note.txt", entry["source"])
	}
}

func TestFileLogger_WithFields(t *testing.T) {
	logger, path := newTestLogger(t, FileLoggerConfig{Format: FormatJSON, Level: InfoLevel})

	batchLogger := logger.WithFields(Fields{"operation_id": "op-1"})
	batchLogger.Info(context.Background(), "planned", Fields{"source": "x"})
	logger.Info(context.Background(), "plain", nil)
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d", len(lines))
	}

	var first, second map[string]interface{}
	json.Unmarshal([]byte(lines[0]), &first)
	json.Unmarshal([]byte(lines[1]), &second)

	if first["operation_id"] != "op-1" || first["source"] != "x" {
		t.Errorf("derived entry = %v, want operation_id and source", first)
	}
	if _, ok := second["operation_id"]; ok {
		t.Error("parent logger should not inherit derived fields")
	}
}

func TestFileLogger_Rotation(t *testing.T) {
	logger, path := newTestLogger(t, FileLoggerConfig{
		Format:     FormatText,
		Level:      InfoLevel,
		MaxSize:    100,
		MaxBackups: 2,
	})

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		logger.Info(ctx, "This is a test message that is long enough to trigger rotation eventually", nil)
	}
	logger.Close()

	if _, err := os.Stat(path + ".1"); os.IsNotExist(err) {
		t.Error("Backup file .1 should exist after rotation")
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Error("Backup file .3 should have been pruned")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("Main log file should still exist")
	}
}

func TestFileLogger_CloseIsIdempotent(t *testing.T) {
	logger, _ := newTestLogger(t, FileLoggerConfig{Format: FormatText, Level: InfoLevel})

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	// Writing after close is discarded rather than panicking
	logger.Info(context.Background(), "late", nil)
}

func TestFileLogger_ConcurrentWrites(t *testing.T) {
	logger, path := newTestLogger(t, FileLoggerConfig{Format: FormatText, Level: InfoLevel})
	ctx := context.Background()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			derived := logger.WithFields(Fields{"worker": id})
			for j := 0; j < 100; j++ {
				derived.Info(ctx, "concurrent message", Fields{"iteration": j})
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Timeout waiting for concurrent writes")
		}
	}
	logger.Close()

	if lines := readLines(t, path); len(lines) != 1000 {
		t.Errorf("Expected 1000 log lines, got %d", len(lines))
	}
}

func TestNullLogger(t *testing.T) {
	var logger Logger = NewNullLogger()
	ctx := context.Background()

	logger.Debug(ctx, "debug", nil)
	logger.Info(ctx, "info", nil)
	logger.Warn(ctx, "warn", nil)
	logger.Error(ctx, "error", nil, nil)

	if logger.WithFields(Fields{"key": "value"}) == nil {
		t.Error("WithFields() returned nil")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelStringAndFormat(t *testing.T) {
	if levelString(WarnLevel) != "WARN" {
		t.Errorf("levelString(WarnLevel) = %s", levelString(WarnLevel))
	}
	if levelString(Level(42)) != "UNKNOWN" {
		t.Errorf("levelString(42) = %s", levelString(Level(42)))
	}
	if ParseFormat("json") != FormatJSON || ParseFormat("xml") != FormatText {
		t.Error("ParseFormat() should map json and default to text")
	}
}
