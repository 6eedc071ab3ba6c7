package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{
		"user_id", "7b0c1f1e-0000-4000-8000-000000000001",
		"access_token", "abc",
		"preset", "reading_support",
		"dangling",
	})
	if len(got) != 7 {
		t.Fatalf("len=%d, want 7: %v", len(got), got)
	}
	if s, _ := got[1].(string); !strings.HasPrefix(s, "hash:") {
		t.Fatalf("user_id not hashed: %v", got[1])
	}
	if got[3] != "[REDACTED]" {
		t.Fatalf("token not redacted: %v", got[3])
	}
	if got[5] != "reading_support" {
		t.Fatalf("preset changed: %v", got[5])
	}
	if got[6] != "dangling" {
		t.Fatalf("dangling key dropped: %v", got[6])
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("service", "Test")
	l.Warn("skipped record", "trial", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["service"] != "Test" {
		t.Fatalf("service field=%v", ctx["service"])
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("level=%v", entries[0].Level)
	}
}

func TestLooksLikeJWT(t *testing.T) {
	if !looksLikeJWT("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTY3ODkwIn0.sig") {
		t.Fatalf("expected jwt shape to match")
	}
	if looksLikeJWT("a.b.c") {
		t.Fatalf("short segments should not match")
	}
}
