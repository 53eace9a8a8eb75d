package httpclient

import (
	"bytes"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/kbukum/netclient/jsoncodec"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeForm   = "application/x-www-form-urlencoded"
	contentTypeJSON   = "application/json; charset=utf-8"
)

// encodeBody converts a body value into a reader and its content type.
// A nil body, including a typed nil map, slice or pointer, yields a nil reader.
func encodeBody(body any, codec *jsoncodec.Codec) (io.Reader, string, error) {
	if isNil(body) {
		return nil, "", nil
	}
	switch v := body.(type) {
	case map[string]string:
		form := make(url.Values, len(v))
		for k, val := range v {
			form.Set(k, val)
		}
		return strings.NewReader(form.Encode()), contentTypeForm, nil
	case url.Values:
		return strings.NewReader(v.Encode()), contentTypeForm, nil
	default:
		data, err := codec.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), contentTypeJSON, nil
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isBlank reports whether a response body carries no content.
func isBlank(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0
}
