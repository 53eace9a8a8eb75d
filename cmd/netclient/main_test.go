package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/kbukum/netclient/errors"
	"github.com/kbukum/netclient/jsoncodec"
)

func TestParseHeaders(t *testing.T) {
	got, err := parseHeaders([]string{"X-Api-Key: secret", "x-trace-id:abc", "X-Empty:"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{"X-Api-Key": "secret", "x-trace-id": "abc", "X-Empty": ""}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("header %q = %q, want %q", k, got[k], v)
		}
	}

	for _, bad := range []string{"no-colon", ": value"} {
		if _, err := parseHeaders([]string{bad}); !apperrors.IsInvalidInput(err) {
			t.Errorf("expected invalid input for %q, got %v", bad, err)
		}
	}
}

func TestParseForm(t *testing.T) {
	got, err := parseForm([]string{"user=ann", "q=a=b", "empty="})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["user"] != "ann" || got["q"] != "a=b" || got["empty"] != "" {
		t.Errorf("unexpected form %v", got)
	}
	if _, err := parseForm([]string{"=x"}); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestParseBody(t *testing.T) {
	body, err := parseBody("", nil)
	if err != nil || body != nil {
		t.Errorf("expected nil body, got %v, %v", body, err)
	}

	body, err = parseBody("", []string{"a=1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := body.(map[string]string); !ok {
		t.Errorf("expected flat form map, got %T", body)
	}

	body, err = parseBody(`{"count": 12345678901234567890}`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := body.(map[string]any)
	if !ok {
		t.Fatalf("expected JSON object, got %T", body)
	}
	if n, ok := m["count"].(json.Number); !ok || n.String() != "12345678901234567890" {
		t.Errorf("expected exact json.Number, got %#v", m["count"])
	}

	if _, err := parseBody("{", nil); !apperrors.IsCode(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT for malformed JSON, got %v", err)
	}
	if _, err := parseBody("{}", []string{"a=1"}); err == nil {
		t.Error("expected error when both --data and --form are set")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Name != serviceName || cfg.HTTP.Name != serviceName {
		t.Errorf("expected names %q, got %q and %q", serviceName, cfg.Name, cfg.HTTP.Name)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected warn log level, got %q", cfg.Logging.Level)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.HTTP.Timeout)
	}
	if !strings.HasPrefix(cfg.HTTP.Headers["User-Agent"], "netclient/") {
		t.Errorf("expected default User-Agent, got %q", cfg.HTTP.Headers["User-Agent"])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigApplyDefaults_KeepsUserAgent(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Headers = map[string]string{"user-agent": "custom"}
	cfg.ApplyDefaults()

	if _, ok := cfg.HTTP.Headers["User-Agent"]; ok {
		t.Error("configured user-agent should not be duplicated")
	}
	if cfg.HTTP.Headers["user-agent"] != "custom" {
		t.Errorf("expected custom user-agent, got %v", cfg.HTTP.Headers)
	}
}

func TestConfigSetNaming(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.JSON = &jsoncodec.Options{SortMapKeys: true}
	cfg.setNaming(jsoncodec.NamingPolicySnakeCaseLower)

	if cfg.HTTP.JSON.NamingPolicy != jsoncodec.NamingPolicySnakeCaseLower || !cfg.HTTP.JSON.SortMapKeys {
		t.Errorf("unexpected options %+v", *cfg.HTTP.JSON)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netclient.yml")
	data := "http:\n  base_url: https://api.test\n  timeout: 5s\n  json:\n    naming_policy: snake\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.HTTP.BaseURL != "https://api.test" || cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("unexpected http config %+v", cfg.HTTP)
	}
	if cfg.HTTP.JSON == nil || cfg.HTTP.JSON.NamingPolicy != jsoncodec.NamingPolicySnakeCaseLower {
		t.Errorf("expected snake naming, got %+v", cfg.HTTP.JSON)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return out.String(), err
}

func decodeEnvelope(t *testing.T, out string) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("expected JSON envelope, got %q: %v", out, err)
	}
	return env
}

func TestRun_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasPrefix(r.UserAgent(), "netclient/") {
			t.Errorf("unexpected user agent %q", r.UserAgent())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":1,"name":"Ann"}`)
	}))
	defer srv.Close()

	out, err := runCLI(t, "get", srv.URL, "-H", "X-Api-Key: secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, out)
	if env["success"] != true || env["statusCode"] != float64(200) {
		t.Errorf("unexpected envelope %v", env)
	}
	data, ok := env["data"].(map[string]any)
	if !ok || data["name"] != "Ann" {
		t.Errorf("unexpected data %v", env["data"])
	}
}

func TestRun_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	out, err := runCLI(t, "delete", srv.URL+"/users/9")
	if !errors.Is(err, errUnsuccessful) {
		t.Fatalf("expected errUnsuccessful, got %v", err)
	}
	env := decodeEnvelope(t, out)
	if env["success"] != false || env["statusCode"] != float64(404) || env["message"] != "Not Found" {
		t.Errorf("unexpected envelope %v", env)
	}
	if _, ok := env["data"]; ok {
		t.Error("non-2xx envelope should carry no data")
	}
}

func TestRun_PostForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("user") != "ann" {
			t.Errorf("unexpected form %v", r.PostForm)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out, err := runCLI(t, "post", srv.URL, "--form", "user=ann")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, out)
	if env["success"] != true || env["statusCode"] != float64(204) {
		t.Errorf("unexpected envelope %v", env)
	}
	if _, ok := env["data"]; ok {
		t.Error("blank body should carry no data")
	}
}

func TestRun_PutJSONWithNaming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json; charset=utf-8" {
			t.Errorf("unexpected content type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	out, err := runCLI(t, "put", srv.URL, "--data", `{"user_name":"ann"}`, "--naming", "snake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := decodeEnvelope(t, out)
	data, ok := env["data"].(map[string]any)
	if !ok || data["user_name"] != "ann" {
		t.Errorf("unexpected data %v", env["data"])
	}
}

func TestRun_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	out, err := runCLI(t, "get", url)
	if !errors.Is(err, errUnsuccessful) {
		t.Fatalf("expected errUnsuccessful, got %v", err)
	}
	env := decodeEnvelope(t, out)
	if env["statusCode"] != float64(500) || env["message"] != "An unexpected error occurred." {
		t.Errorf("unexpected envelope %v", env)
	}
}

func TestRun_InvalidNaming(t *testing.T) {
	if _, err := runCLI(t, "get", "http://127.0.0.1", "--naming", "pascal"); err == nil {
		t.Error("expected error for unknown naming policy")
	}
}

func TestRun_Resolve(t *testing.T) {
	out, err := runCLI(t, "resolve", "127.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"127.0.0.1"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRun_ResolveBlankHost(t *testing.T) {
	out, err := runCLI(t, "resolve", " ")
	if !errors.Is(err, errUnsuccessful) {
		t.Fatalf("expected errUnsuccessful, got %v", err)
	}
	doc := decodeEnvelope(t, out)
	body, ok := doc["error"].(map[string]any)
	if !ok || body["code"] != "INVALID_INPUT" {
		t.Errorf("unexpected error document %v", doc)
	}
}

func TestRun_ResolveLookupFailure(t *testing.T) {
	out, err := runCLI(t, "resolve", "nonexistent.invalid")
	if !errors.Is(err, errUnsuccessful) {
		t.Fatalf("expected errUnsuccessful, got %v", err)
	}
	doc := decodeEnvelope(t, out)
	body, ok := doc["error"].(map[string]any)
	if !ok || body["code"] != "LOOKUP_FAILED" || body["retryable"] != true {
		t.Errorf("unexpected error document %v", doc)
	}
	details, _ := body["details"].(map[string]any)
	if details["host"] != "nonexistent.invalid" {
		t.Errorf("expected host detail, got %v", body["details"])
	}
}

func TestRun_InvalidHeaderPrintsErrorDocument(t *testing.T) {
	out, err := runCLI(t, "get", "http://127.0.0.1", "-H", "no-colon", "-H", ": empty")
	if !errors.Is(err, errUnsuccessful) {
		t.Fatalf("expected errUnsuccessful, got %v", err)
	}
	doc := decodeEnvelope(t, out)
	body, ok := doc["error"].(map[string]any)
	if !ok || body["code"] != "INVALID_INPUT" {
		t.Fatalf("unexpected error document %v", doc)
	}
	details, _ := body["details"].(map[string]any)
	if fields, _ := details["fields"].([]any); len(fields) != 2 {
		t.Errorf("expected both bad headers reported, got %v", details["fields"])
	}
}

func TestRun_ConfigErrorIsConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netclient.yml")
	if err := os.WriteFile(path, []byte("http: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := runCLI(t, "get", "http://127.0.0.1", "--config", path)
	if !apperrors.IsCode(err, apperrors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION_ERROR, got %v", err)
	}
}

func TestRun_Version(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("expected JSON, got %q", out)
	}
	if info["version"] == "" || info["version"] == nil {
		t.Errorf("expected version field, got %v", info)
	}
}
