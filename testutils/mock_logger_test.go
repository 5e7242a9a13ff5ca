package testutils

import (
	"testing"

	"github.com/evdnx/stratcfg/logger"
)

func TestMockLoggerRecords(t *testing.T) {
	l := NewMockLogger()
	l.Info("hello", logger.String("k", "v"))
	if got := l.LastMessage(); got != "hello" {
		t.Fatalf("expected last message 'hello', got %q", got)
	}
	if got := l.FieldValue("k"); got != "v" {
		t.Fatalf("expected field value 'v', got %q", got)
	}
	l.Warn("careful")
	if got := l.Messages("warn"); len(got) != 1 || got[0] != "careful" {
		t.Fatalf("unexpected warn messages: %v", got)
	}
}
