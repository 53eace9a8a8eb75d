package version

import (
	"strings"
	"testing"
)

func restore(t *testing.T) {
	t.Helper()
	v, c, b := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = v, c, b })
}

func TestGet_LdflagsWin(t *testing.T) {
	restore(t)
	Version = "1.0.0"
	GitCommit = "abcdef0123"
	BuildTime = "2026-01-15T10:30:00Z"

	info := Get()
	if info.Version != "1.0.0" || info.BuildTime != "2026-01-15T10:30:00Z" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.GitCommit != "abcdef0" {
		t.Errorf("expected commit truncated to 7 chars, got %q", info.GitCommit)
	}
}

func TestInfo_IsRelease(t *testing.T) {
	tests := []struct {
		info Info
		want bool
	}{
		{Info{Version: "dev"}, false},
		{Info{Version: "1.0.0"}, true},
		{Info{Version: "1.0.0", Dirty: true}, false},
		{Info{Version: "1.0.0-dirty"}, false},
	}
	for _, tc := range tests {
		if got := tc.info.IsRelease(); got != tc.want {
			t.Errorf("%+v IsRelease() = %v, want %v", tc.info, got, tc.want)
		}
	}
}

func TestInfo_ShortAndString(t *testing.T) {
	info := Info{Version: "1.2.0", GitCommit: "abc1234", Dirty: true, BuildTime: "2026-01-15T10:30:00Z", GoVersion: "go1.26.0"}
	if got := info.Short(); got != "1.2.0-abc1234-dirty" {
		t.Errorf("unexpected Short() %q", got)
	}
	if got := info.String(); got != "1.2.0-abc1234-dirty (built 2026-01-15T10:30:00Z) go1.26.0" {
		t.Errorf("unexpected String() %q", got)
	}
	if got := (Info{Version: "dev"}).Short(); got != "dev" {
		t.Errorf("expected dev, got %q", got)
	}
}

func TestUserAgent(t *testing.T) {
	restore(t)
	Version = "3.1.4"
	if ua := UserAgent(); !strings.HasPrefix(ua, "netclient/3.1.4") {
		t.Errorf("unexpected user agent %q", ua)
	}
}
