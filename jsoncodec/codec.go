package jsoncodec

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"unicode"

	jsoniter "github.com/json-iterator/go"
)

// Options configures a Codec. Options is comparable and used as a cache key.
type Options struct {
	// NamingPolicy renames untagged exported fields on encode and decode.
	NamingPolicy NamingPolicy `yaml:"naming_policy" mapstructure:"naming_policy"`
	// CaseSensitive requires exact key matches when decoding.
	CaseSensitive bool `yaml:"case_sensitive" mapstructure:"case_sensitive"`
	// EscapeHTML escapes <, > and & inside strings.
	EscapeHTML bool `yaml:"escape_html" mapstructure:"escape_html"`
	// SortMapKeys writes map keys in sorted order.
	SortMapKeys bool `yaml:"sort_map_keys" mapstructure:"sort_map_keys"`
	// UseNumber decodes numbers into interface{} as json.Number.
	UseNumber bool `yaml:"use_number" mapstructure:"use_number"`
	// DisallowUnknownFields fails decoding on keys with no matching field.
	DisallowUnknownFields bool `yaml:"disallow_unknown_fields" mapstructure:"disallow_unknown_fields"`
}

// Default returns camelCase naming with case-insensitive decoding.
func Default() Options {
	return Options{NamingPolicy: NamingPolicyCamelCase}
}

// Codec marshals and unmarshals JSON with a fixed set of Options.
type Codec struct {
	api  jsoniter.API
	opts Options
}

var codecs sync.Map // Options -> *Codec

// New returns the codec for opts. The options are used exactly as given;
// nothing is merged from Default. Codecs are cached per distinct Options.
func New(opts Options) *Codec {
	if c, ok := codecs.Load(opts); ok {
		return c.(*Codec)
	}

	api := jsoniter.Config{
		EscapeHTML:             opts.EscapeHTML,
		SortMapKeys:            opts.SortMapKeys,
		CaseSensitive:          opts.CaseSensitive,
		UseNumber:              opts.UseNumber,
		DisallowUnknownFields:  opts.DisallowUnknownFields,
		ValidateJsonRawMessage: true,
	}.Froze()
	if opts.NamingPolicy != NamingPolicyNone {
		api.RegisterExtension(&namingExtension{policy: opts.NamingPolicy})
	}

	c, _ := codecs.LoadOrStore(opts, &Codec{api: api, opts: opts})
	return c.(*Codec)
}

// Options returns the options the codec was built with.
func (c *Codec) Options() Options {
	return c.opts
}

// Marshal encodes v.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

// MarshalIndent encodes v with this codec's options, then indents the result.
// Any prefix and indent strings are accepted.
func (c *Codec) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	data, err := c.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}

// Marshal encodes v with the default options.
func Marshal(v any) ([]byte, error) {
	return New(Default()).Marshal(v)
}

// Unmarshal decodes data into v with the default options.
func Unmarshal(data []byte, v any) error {
	return New(Default()).Unmarshal(data, v)
}

// namingExtension renames struct fields that have no explicit json name.
type namingExtension struct {
	jsoniter.DummyExtension
	policy NamingPolicy
}

func (e *namingExtension) UpdateStructDescriptor(sd *jsoniter.StructDescriptor) {
	for _, binding := range sd.Fields {
		name := binding.Field.Name()
		if r := []rune(name); len(r) == 0 || !unicode.IsUpper(r[0]) {
			continue
		}
		if tag, ok := binding.Field.Tag().Lookup("json"); ok {
			tagName := strings.SplitN(tag, ",", 2)[0]
			if tagName == "-" || tagName != "" {
				continue
			}
		}
		translated := Translate(e.policy, name)
		binding.ToNames = []string{translated}
		binding.FromNames = []string{translated}
	}
}
