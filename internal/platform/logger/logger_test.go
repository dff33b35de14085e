package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"provider", "anthropic",
		"api_key", "sk-ant-123456789",
		"max_tokens", 1024,
	})
	if len(out) != 6 {
		t.Fatalf("len: want=6 got=%d", len(out))
	}
	if out[1] != "anthropic" {
		t.Fatalf("provider: want=anthropic got=%v", out[1])
	}
	if out[3] != "[REDACTED]" {
		t.Fatalf("api_key: want=[REDACTED] got=%v", out[3])
	}
	if out[5] != 1024 {
		t.Fatalf("max_tokens should pass through: got=%v", out[5])
	}
}

func TestSanitizeKVsRedactsNestedStringMap(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"settings", map[string]string{"OPENAI_API_KEY": "sk-x", "PROVIDER": "openai"},
	})
	m, ok := out[1].(map[string]string)
	if !ok {
		t.Fatalf("settings: expected map[string]string, got %T", out[1])
	}
	if m["OPENAI_API_KEY"] != "[REDACTED]" {
		t.Fatalf("OPENAI_API_KEY: want=[REDACTED] got=%q", m["OPENAI_API_KEY"])
	}
	if m["PROVIDER"] != "openai" {
		t.Fatalf("PROVIDER: want=openai got=%q", m["PROVIDER"])
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"post_id", "p1", "dangling"})
	if len(out) != 3 || out[2] != "dangling" {
		t.Fatalf("odd kv list should keep trailing key: %v", out)
	}
}
