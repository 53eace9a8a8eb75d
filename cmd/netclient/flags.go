package main

import (
	"fmt"
	"strings"

	"github.com/kbukum/netclient/errors"
	"github.com/kbukum/netclient/jsoncodec"
	"github.com/kbukum/netclient/validation"
)

// parseHeaders turns "Name: value" flags into a header map. Names are kept
// exactly as typed; "Name:" sends an empty value.
func parseHeaders(values []string) (map[string]string, error) {
	v := validation.New()
	headers := make(map[string]string, len(values))
	for _, raw := range values {
		name, value, ok := strings.Cut(raw, ":")
		name = strings.TrimSpace(name)
		v.Custom(ok && name != "", "header", fmt.Sprintf("%q: expected \"Name: value\"", raw))
		if name != "" {
			headers[name] = strings.TrimSpace(value)
		}
	}
	if appErr := v.Validate(); appErr != nil {
		return nil, appErr
	}
	return headers, nil
}

// parseForm turns "key=value" flags into a flat form map.
func parseForm(values []string) (map[string]string, error) {
	v := validation.New()
	form := make(map[string]string, len(values))
	for _, raw := range values {
		key, value, ok := strings.Cut(raw, "=")
		v.Custom(ok, "form", fmt.Sprintf("%q: expected key=value", raw)).
			Required("form key", key)
		form[key] = value
	}
	if appErr := v.Validate(); appErr != nil {
		return nil, appErr
	}
	return form, nil
}

// parseBody builds the request body from --data or --form. A JSON document
// keeps its numbers exact when re-encoded.
func parseBody(data string, form []string) (any, error) {
	if appErr := validation.New().
		Custom(data == "" || len(form) == 0, "data", "--data and --form are mutually exclusive").
		Validate(); appErr != nil {
		return nil, appErr
	}
	switch {
	case len(form) > 0:
		return parseForm(form)
	case data != "":
		var body any
		if err := jsoncodec.New(jsoncodec.Options{UseNumber: true}).Unmarshal([]byte(data), &body); err != nil {
			return nil, errors.InvalidFormat("data", "a JSON document").WithCause(err)
		}
		return body, nil
	default:
		return nil, nil
	}
}
