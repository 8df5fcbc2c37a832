package image

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestExtractB64(t *testing.T) {
	t.Run("images array with keyed object", func(t *testing.T) {
		payload, err := ExtractB64([]byte(`{"images":[{"image_b64":"AAAA"}]}`))
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}
		if payload.Kind != KindImages {
			t.Fatalf("expected KindImages, got %v", payload.Kind)
		}
		if payload.Primary() != "AAAA" {
			t.Fatalf("expected AAAA, got %q", payload.Primary())
		}
	})

	t.Run("images array with raw string", func(t *testing.T) {
		payload, err := ExtractB64([]byte(`{"images":["AAAA"]}`))
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}
		if payload.Kind != KindImages || payload.Primary() != "AAAA" {
			t.Fatalf("expected images/AAAA, got %v/%q", payload.Kind, payload.Primary())
		}
	})

	t.Run("bare array", func(t *testing.T) {
		payload, err := ExtractB64([]byte(`["AAAA","BBBB"]`))
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}
		if payload.Kind != KindArray {
			t.Fatalf("expected KindArray, got %v", payload.Kind)
		}
		if !reflect.DeepEqual(payload.Values, []string{"AAAA", "BBBB"}) {
			t.Fatalf("expected both values kept, got %v", payload.Values)
		}
	})

	t.Run("bare string", func(t *testing.T) {
		payload, err := ExtractB64([]byte(`"AAAA"`))
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}
		if payload.Kind != KindScalar || payload.Primary() != "AAAA" {
			t.Fatalf("expected scalar/AAAA, got %v/%q", payload.Kind, payload.Primary())
		}
	})

	t.Run("first candidate key wins", func(t *testing.T) {
		payload, err := ExtractB64([]byte(`{"images":[{"image":"second","image_b64":"first"}]}`))
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}
		if payload.Primary() != "first" {
			t.Fatalf("expected image_b64 to take priority, got %q", payload.Primary())
		}
	})

	t.Run("key holding an array", func(t *testing.T) {
		payload, err := ExtractB64([]byte(`{"images":[{"base64_images":["a","b"]}]}`))
		if err != nil {
			t.Fatalf("extract failed: %v", err)
		}
		if !reflect.DeepEqual(payload.Values, []string{"a", "b"}) {
			t.Fatalf("expected [a b], got %v", payload.Values)
		}
	})

	t.Run("no image", func(t *testing.T) {
		for _, body := range []string{
			`{"images":[]}`,
			`{"inference_time":1.5}`,
			`{"images":[{"unknown":"x"}]}`,
			`{"images":[{"image_b64":""}]}`,
			`{"images":[42]}`,
			`[]`,
			`""`,
			`42`,
			`null`,
		} {
			_, err := ExtractB64([]byte(body))
			if !errors.Is(err, ErrNoImage) {
				t.Fatalf("body %s: expected ErrNoImage, got %v", body, err)
			}
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ExtractB64([]byte(`{not json`))
		if err == nil || errors.Is(err, ErrNoImage) {
			t.Fatalf("expected a parse error, got %v", err)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := &B64Payload{Kind: KindScalar, Values: []string{"aGVsbG8="}}
		data, err := Decode(payload)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !bytes.Equal(data, []byte("hello")) {
			t.Fatalf("expected hello, got %q", data)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		payload := &B64Payload{Kind: KindScalar, Values: []string{"!!not-base64!!"}}
		_, err := Decode(payload)
		if err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("array decodes first element", func(t *testing.T) {
		payload := &B64Payload{Kind: KindArray, Values: []string{"aGVsbG8=", "ignored"}}
		data, err := Decode(payload)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if string(data) != "hello" {
			t.Fatalf("expected hello, got %q", data)
		}
	})
}
