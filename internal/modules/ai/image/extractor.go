package image

import (
	"encoding/base64"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Field names an images[0] object may carry its payload under, in
// priority order. The first key present wins even when several are
// set.
var b64Fields = []string{"image_b64", "image", "base64", "data", "base64_images"}

// PayloadKind identifies which of the known response layouts matched.
type PayloadKind int

const (
	// KindImages: object response with an "images" array.
	KindImages PayloadKind = iota
	// KindArray: bare top-level array of base64 strings.
	KindArray
	// KindScalar: single bare base64 string.
	KindScalar
)

var (
	ErrNoImage      = errors.New("no base64 image found in response")
	StatusCodeError = errors.New("unexpected http status code")
)

// B64Payload is the normalized result of shape-sniffing a response
// body.
type B64Payload struct {
	Kind   PayloadKind
	Values []string
}

// Primary returns the value the decode step operates on.
func (p *B64Payload) Primary() string {
	return p.Values[0]
}

// ExtractB64 sniffs a JSON body for one of three layouts: an object
// holding an "images" array (elements either keyed objects or raw
// strings), a bare array of strings, or a single bare string. An
// empty or unrecognized body yields ErrNoImage; a body that is not
// JSON at all is its own error.
func ExtractB64(body []byte) (*B64Payload, error) {
	var root any
	if err := jsoniter.Unmarshal(body, &root); err != nil {
		return nil, err
	}
	switch v := root.(type) {
	case map[string]any:
		images, ok := v["images"]
		if !ok {
			return nil, ErrNoImage
		}
		arr, ok := images.([]any)
		if !ok || len(arr) == 0 {
			return nil, ErrNoImage
		}
		switch first := arr[0].(type) {
		case map[string]any:
			for _, field := range b64Fields {
				raw, ok := first[field]
				if !ok {
					continue
				}
				values, err := stringValues(raw)
				if err != nil {
					return nil, err
				}
				return &B64Payload{Kind: KindImages, Values: values}, nil
			}
			return nil, ErrNoImage
		case string:
			if first == "" {
				return nil, ErrNoImage
			}
			return &B64Payload{Kind: KindImages, Values: []string{first}}, nil
		default:
			return nil, ErrNoImage
		}
	case []any:
		values, err := stringValues(v)
		if err != nil {
			return nil, err
		}
		return &B64Payload{Kind: KindArray, Values: values}, nil
	case string:
		if v == "" {
			return nil, ErrNoImage
		}
		return &B64Payload{Kind: KindScalar, Values: []string{v}}, nil
	default:
		return nil, ErrNoImage
	}
}

func stringValues(raw any) ([]string, error) {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil, ErrNoImage
		}
		return []string{v}, nil
	case []any:
		if len(v) == 0 {
			return nil, ErrNoImage
		}
		values := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok || s == "" {
				return nil, ErrNoImage
			}
			values = append(values, s)
		}
		return values, nil
	default:
		return nil, ErrNoImage
	}
}

// Decode base64-decodes the payload's primary value. A failure here
// is reported distinctly from the no-image case.
func Decode(p *B64Payload) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(p.Primary())
	if err != nil {
		return nil, fmt.Errorf("base64 decode failed: %w", err)
	}
	return data, nil
}
