package jsoncodec

import (
	"testing"

	"github.com/kbukum/netclient/errors"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		policy NamingPolicy
		in     string
		want   string
	}{
		{NamingPolicyCamelCase, "Name", "name"},
		{NamingPolicyCamelCase, "ID", "id"},
		{NamingPolicyCamelCase, "URLValue", "urlValue"},
		{NamingPolicyCamelCase, "IOStream", "ioStream"},
		{NamingPolicyCamelCase, "FirstName", "firstName"},
		{NamingPolicyCamelCase, "already", "already"},
		{NamingPolicyCamelCase, "", ""},
		{NamingPolicySnakeCaseLower, "FirstName", "first_name"},
		{NamingPolicySnakeCaseLower, "UserID", "user_id"},
		{NamingPolicySnakeCaseLower, "URLValue", "url_value"},
		{NamingPolicySnakeCaseLower, "HTTP2Server", "http2_server"},
		{NamingPolicySnakeCaseUpper, "FirstName", "FIRST_NAME"},
		{NamingPolicyKebabCaseLower, "FirstName", "first-name"},
		{NamingPolicyKebabCaseUpper, "URLValue", "URL-VALUE"},
		{NamingPolicyNone, "FirstName", "FirstName"},
	}

	for _, tc := range tests {
		t.Run(tc.policy.String()+"/"+tc.in, func(t *testing.T) {
			if got := Translate(tc.policy, tc.in); got != tc.want {
				t.Errorf("Translate(%s, %q) = %q, want %q", tc.policy, tc.in, got, tc.want)
			}
		})
	}
}

func TestParseNamingPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want NamingPolicy
	}{
		{"", NamingPolicyNone},
		{"none", NamingPolicyNone},
		{"camel", NamingPolicyCamelCase},
		{"CamelCase", NamingPolicyCamelCase},
		{"snake", NamingPolicySnakeCaseLower},
		{"snake-upper", NamingPolicySnakeCaseUpper},
		{"kebab", NamingPolicyKebabCaseLower},
		{"KEBAB_UPPER", NamingPolicyKebabCaseUpper},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseNamingPolicy(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseNamingPolicy(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseNamingPolicy_Invalid(t *testing.T) {
	_, err := ParseNamingPolicy("pascal")
	if !errors.IsCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT error, got %v", err)
	}
}

func TestNamingPolicy_StringRoundTrip(t *testing.T) {
	for policy := range policyNames {
		parsed, err := ParseNamingPolicy(policy.String())
		if err != nil || parsed != policy {
			t.Errorf("round trip of %s gave %s, %v", policy, parsed, err)
		}
	}
	if NamingPolicy(99).String() != "unknown" {
		t.Error("expected unknown for out-of-range policy")
	}
}

func TestNamingPolicy_TextUnmarshal(t *testing.T) {
	var p NamingPolicy
	if err := p.UnmarshalText([]byte("kebab-upper")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if p != NamingPolicyKebabCaseUpper {
		t.Errorf("expected kebab_upper, got %v", p)
	}
	if err := p.UnmarshalText([]byte("pascal")); err == nil {
		t.Error("expected error for unknown policy")
	}
	text, _ := NamingPolicySnakeCaseLower.MarshalText()
	if string(text) != "snake" {
		t.Errorf("expected snake, got %q", text)
	}
}
