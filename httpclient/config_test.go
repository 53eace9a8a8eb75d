package httpclient

import (
	"strings"
	"testing"
	"time"

	"github.com/kbukum/netclient/errors"
	"github.com/kbukum/netclient/jsoncodec"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.Name != "http" {
		t.Errorf("expected default name http, got %q", cfg.Name)
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{Name: "api", Timeout: 5 * time.Second}
	cfg.ApplyDefaults()
	if cfg.Timeout != 5*time.Second || cfg.Name != "api" {
		t.Errorf("expected existing values kept, got %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Timeout: time.Second, BaseURL: "https://api.test"}, ""},
		{"no base url", Config{Timeout: time.Second}, ""},
		{"zero timeout", Config{}, "timeout"},
		{"bad base url", Config{Timeout: time.Second, BaseURL: "not a url"}, "base_url"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
			if !errors.IsInvalidInput(err) {
				t.Errorf("expected INVALID_INPUT AppError, got %T", err)
			}
		})
	}
}

func TestConfig_JSONOptions(t *testing.T) {
	cfg := Config{}
	if cfg.jsonOptions() != jsoncodec.Default() {
		t.Errorf("expected defaults when JSON is nil, got %+v", cfg.jsonOptions())
	}

	custom := jsoncodec.Options{NamingPolicy: jsoncodec.NamingPolicyNone}
	cfg.JSON = &custom
	if cfg.jsonOptions() != custom {
		t.Errorf("expected configured options to replace defaults, got %+v", cfg.jsonOptions())
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{BaseURL: "::"}); err == nil {
		t.Error("expected New to reject an invalid base URL")
	}
}
