// Package serialization converts values to and from JSON, XML and YAML
// text, and provides JSONString and XMLString, string values that know
// whether they hold well formed documents.
//
// Errors returned by the underlying encoders are passed through.
package serialization

import (
	"bytes"
	"encoding/json"
	"encoding/xml"

	"github.com/goccy/go-yaml"
)

// An Option configures how a value is encoded.
type Option interface {
	apply(*options)
}

// funcOption wraps a function that modifies options into an
// implementation of the Option interface.
type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(o *options) {
	fo.f(o)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

type options struct {
	indent string
}

// WithIndent makes JSON and XML output indented with indent.
// YAML output is always block formatted.
func WithIndent(indent string) Option {
	return newFuncOption(func(o *options) {
		o.indent = indent
	})
}

func newOptions(opts []Option) *options {
	o := &options{}

	for _, opt := range opts {
		opt.apply(o)
	}

	return o
}

// ToJSON encodes v as JSON. HTML characters are not escaped.
func ToJSON(v any, opts ...Option) (string, error) {
	o := newOptions(opts)

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", o.indent)

	if err := enc.Encode(v); err != nil {
		return "", err
	}

	// Encode terminates every value with a newline.
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// FromJSON decodes the JSON document s into a new T.
func FromJSON[T any](s string) (T, error) {
	var v T

	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, err
	}

	return v, nil
}

// ToXML encodes v as an XML element.
func ToXML(v any, opts ...Option) (string, error) {
	o := newOptions(opts)

	b, err := xml.MarshalIndent(v, "", o.indent)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// FromXML decodes the XML document s into a new T.
func FromXML[T any](s string) (T, error) {
	var v T

	if err := xml.Unmarshal([]byte(s), &v); err != nil {
		return v, err
	}

	return v, nil
}

// ToYAML encodes v as YAML.
func ToYAML(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// FromYAML decodes the YAML document s into a new T.
func FromYAML[T any](s string) (T, error) {
	var v T

	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return v, err
	}

	return v, nil
}
