// Package jsoncodec provides the JSON encoder/decoder used by httpclient.
//
// A Codec is built from Options; the most important option is the
// NamingPolicy, which renames exported struct fields that carry no explicit
// `json:"name"` tag. The default policy is camelCase, so
//
//	type User struct {
//	    FirstName string
//	    ID        int
//	}
//
// encodes as {"firstName":"...","id":1} and decodes from the same keys.
package jsoncodec
