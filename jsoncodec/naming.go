package jsoncodec

import (
	"strings"
	"unicode"

	"github.com/kbukum/netclient/errors"
)

// NamingPolicy selects how untagged struct field names appear in JSON.
type NamingPolicy int

const (
	// NamingPolicyNone keeps Go field names as-is.
	NamingPolicyNone NamingPolicy = iota
	// NamingPolicyCamelCase maps FirstName to firstName and ID to id.
	NamingPolicyCamelCase
	// NamingPolicySnakeCaseLower maps FirstName to first_name.
	NamingPolicySnakeCaseLower
	// NamingPolicySnakeCaseUpper maps FirstName to FIRST_NAME.
	NamingPolicySnakeCaseUpper
	// NamingPolicyKebabCaseLower maps FirstName to first-name.
	NamingPolicyKebabCaseLower
	// NamingPolicyKebabCaseUpper maps FirstName to FIRST-NAME.
	NamingPolicyKebabCaseUpper
)

var policyNames = map[NamingPolicy]string{
	NamingPolicyNone:           "none",
	NamingPolicyCamelCase:      "camel",
	NamingPolicySnakeCaseLower: "snake",
	NamingPolicySnakeCaseUpper: "snake_upper",
	NamingPolicyKebabCaseLower: "kebab",
	NamingPolicyKebabCaseUpper: "kebab_upper",
}

// String returns the policy name accepted by ParseNamingPolicy.
func (p NamingPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseNamingPolicy parses a policy name such as "camel" or "snake_upper".
// Matching is case-insensitive and accepts "-" for "_".
func ParseNamingPolicy(s string) (NamingPolicy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch key {
	case "", "none":
		return NamingPolicyNone, nil
	case "camel", "camelcase", "camel_case":
		return NamingPolicyCamelCase, nil
	case "snake", "snake_lower", "snake_case", "snake_case_lower":
		return NamingPolicySnakeCaseLower, nil
	case "snake_upper", "snake_case_upper":
		return NamingPolicySnakeCaseUpper, nil
	case "kebab", "kebab_lower", "kebab_case", "kebab_case_lower":
		return NamingPolicyKebabCaseLower, nil
	case "kebab_upper", "kebab_case_upper":
		return NamingPolicyKebabCaseUpper, nil
	}
	return NamingPolicyNone, errors.InvalidFormat("naming_policy", "none|camel|snake|snake_upper|kebab|kebab_upper")
}

// MarshalText implements encoding.TextMarshaler.
func (p NamingPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config files and
// env vars can name the policy.
func (p *NamingPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseNamingPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Translate converts a Go field name according to the policy.
func Translate(policy NamingPolicy, name string) string {
	switch policy {
	case NamingPolicyCamelCase:
		return toCamelCase(name)
	case NamingPolicySnakeCaseLower:
		return joinWords(name, '_', unicode.ToLower)
	case NamingPolicySnakeCaseUpper:
		return joinWords(name, '_', unicode.ToUpper)
	case NamingPolicyKebabCaseLower:
		return joinWords(name, '-', unicode.ToLower)
	case NamingPolicyKebabCaseUpper:
		return joinWords(name, '-', unicode.ToUpper)
	default:
		return name
	}
}

// toCamelCase lowercases the leading run of upper-case letters, leaving the
// last one of a run upper-case when it starts the next word (URLValue -> urlValue).
func toCamelCase(name string) string {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return name
	}

	for i := range runes {
		if i == 1 && !unicode.IsUpper(runes[i]) {
			break
		}
		hasNext := i+1 < len(runes)
		if i > 0 && hasNext && !unicode.IsUpper(runes[i+1]) {
			if runes[i+1] == ' ' {
				runes[i] = unicode.ToLower(runes[i])
			}
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func joinWords(name string, sep rune, mapCase func(rune) rune) string {
	words := splitWords(name)
	var b strings.Builder
	b.Grow(len(name) + len(words))
	for i, w := range words {
		if i > 0 {
			b.WriteRune(sep)
		}
		for _, r := range w {
			b.WriteRune(mapCase(r))
		}
	}
	return b.String()
}

// splitWords breaks an identifier on separators, lower/digit->upper
// transitions, and the end of an acronym (HTTPServer -> HTTP, Server).
func splitWords(name string) []string {
	runes := []rune(name)
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
