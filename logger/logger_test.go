package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Service() != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.Service())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	if l := New(cfg, "test"); l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewWithWriter_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", "test").WithComponent("httpclient")

	l.Debug("request completed", Fields(FieldStatus, 200, FieldMethod, "GET"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "request completed" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	if entry[FieldComponent] != "httpclient" {
		t.Errorf("expected component field, got %v", entry[FieldComponent])
	}
	if entry[FieldMethod] != "GET" {
		t.Errorf("expected method field, got %v", entry[FieldMethod])
	}
	if entry[FieldStatus] != float64(200) {
		t.Errorf("expected status 200, got %v", entry[FieldStatus])
	}
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", "test")

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug should be filtered at info level, got %q", buf.String())
	}

	l.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info line, got %q", buf.String())
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", "test").
		WithFields(map[string]interface{}{"key": "value"}).
		WithError(fmt.Errorf("boom"))

	l.Warn("warned")
	out := buf.String()
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected key field, got %q", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Errorf("expected error field, got %q", out)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	if l.WithComponent("x") == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestInit(t *testing.T) {
	Init(Config{ServiceName: "netclient", Level: "info", Format: "json", Output: "stdout"})
	gl := GetGlobalLogger()
	if gl == nil {
		t.Fatal("expected global logger to be set after Init")
	}
	if gl.Service() != "netclient" {
		t.Errorf("expected service netclient, got %q", gl.Service())
	}
}

func TestSetGlobalLogger(t *testing.T) {
	l := NewDefault("custom")
	SetGlobalLogger(l)
	if got := GetGlobalLogger(); got != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	SetGlobalLogger(Nop())
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stdout"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
		{"missing level", Config{Format: "json", Output: "stdout"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewDefault("custom-component")
	Register("my-component", l)

	if got := Get("my-component"); got != l {
		t.Error("expected Get to return the registered logger")
	}
}

func TestGetUnregistered(t *testing.T) {
	if got := Get("unregistered-component"); got == nil {
		t.Fatal("expected non-nil logger for unregistered component")
	}
}

func TestRegisterDefaults(t *testing.T) {
	SetGlobalLogger(Nop())
	RegisterDefaults("httpclient", "network")

	for _, name := range []string{"httpclient", "network"} {
		if got := Get(name); got == nil {
			t.Errorf("expected non-nil logger for %q", name)
		}
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []interface{}
		expected map[string]interface{}
	}{
		{"key-value pairs", []interface{}{"op", "get", "status", 200}, map[string]interface{}{"op": "get", "status": 200}},
		{"odd number of args", []interface{}{"op", "get", "trailing"}, map[string]interface{}{"op": "get"}},
		{"empty", []interface{}{}, map[string]interface{}{}},
		{"non-string key skipped", []interface{}{123, "value", "key", "val"}, map[string]interface{}{"key": "val"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Fields(tc.input...)
			if len(result) != len(tc.expected) {
				t.Errorf("expected %d fields, got %d", len(tc.expected), len(result))
			}
			for k, v := range tc.expected {
				if result[k] != v {
					t.Errorf("Fields[%q] = %v, expected %v", k, result[k], v)
				}
			}
		})
	}
}

func TestMergeHelpers(t *testing.T) {
	result := MergeWithError(nil, fmt.Errorf("test error"))
	if result[FieldError] != "test error" {
		t.Errorf("expected error field, got %v", result[FieldError])
	}

	result = MergeWithDuration(map[string]interface{}{"op": "get"}, 200*time.Millisecond)
	if result[FieldDuration] != int64(200) || result["op"] != "get" {
		t.Errorf("unexpected merged fields %v", result)
	}
}

func TestConsoleFormats(t *testing.T) {
	for _, format := range []string{"console", FormatPretty} {
		cfg := &Config{Level: "info", Format: format, Output: "stderr", NoColor: true}
		if New(cfg, "test-svc") == nil {
			t.Fatalf("expected logger with %s format", format)
		}
	}
}

func TestLevelTag(t *testing.T) {
	if got := levelTag("INFO", true); got != "[INF]" {
		t.Errorf("expected [INF], got %q", got)
	}
	if got := levelTag("CUSTOM", true); got != "[CUSTOM]" {
		t.Errorf("expected [CUSTOM], got %q", got)
	}
	if got := levelTag("ERROR", false); !strings.Contains(got, "[ERR]") {
		t.Errorf("expected colored [ERR], got %q", got)
	}
}

func TestOutputWriter(t *testing.T) {
	if outputWriter("stdout") != os.Stdout {
		t.Error("expected stdout")
	}
	if outputWriter("anything") != os.Stderr {
		t.Error("expected stderr default")
	}
}
