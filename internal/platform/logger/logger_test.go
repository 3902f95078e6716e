package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs_RedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"list", "Weekly", "Passphrase", "hunter2", "dangling"})
	want := []interface{}{"list", "Weekly", "Passphrase", "[REDACTED]", "dangling"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kv[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLogger_WritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "grocery").Debug("save failed", "key", "savedGroceryLists", "secret", "x")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "grocery" || fields["key"] != "savedGroceryLists" {
		t.Fatalf("fields = %v", fields)
	}
	if fields["secret"] != "[REDACTED]" {
		t.Fatalf("secret not redacted: %v", fields["secret"])
	}
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.Info("hello")
	}
	Nop().Error("discarded")
}
