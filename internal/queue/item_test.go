package queue

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestEncodeKey(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "a1", want: "s:a1"},
		{name: "empty string", value: "", want: "s:"},
		{name: "numeric string", value: "1", want: "s:1"},
		{name: "int", value: 1, want: "n:1"},
		{name: "float equal to int", value: 1.0, want: "n:1"},
		{name: "json number", value: json.Number("1"), want: "n:1"},
		{name: "json number with fraction zero", value: json.Number("1.0"), want: "n:1"},
		{name: "json number exponent", value: json.Number("1e3"), want: "n:1000"},
		{name: "json number float", value: json.Number("1.50"), want: "n:3/2"},
		{name: "uint64", value: uint64(42), want: "n:42"},
		{name: "negative zero", value: math.Copysign(0, -1), want: "n:0"},
		{name: "fraction", value: float32(0.5), want: "n:1/2"},
		{name: "float32 shortest form", value: float32(0.1), want: "n:1/10"},
		{name: "float64 shortest form", value: 0.1, want: "n:1/10"},
		{name: "large int64", value: int64(9007199254740993), want: "n:9007199254740993"},
		{name: "max uint64", value: uint64(math.MaxUint64), want: "n:18446744073709551615"},
		{name: "large json number", value: json.Number("9007199254740993"), want: "n:9007199254740993"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := encodeKey(tc.value)
			if err != nil {
				t.Fatalf("encodeKey(%v) error: %v", tc.value, err)
			}
			if got != tc.want {
				t.Fatalf("encodeKey(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestEncodeKeyRejects(t *testing.T) {
	values := []any{
		nil,
		true,
		math.NaN(),
		math.Inf(1),
		json.Number("abc"),
		json.Number("NaN"),
		json.Number("1e400"),
		"scan\xff",
		[]any{"a"},
		struct{}{},
	}
	for _, value := range values {
		if _, err := encodeKey(value); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("encodeKey(%#v) expected ErrInvalidKey, got %v", value, err)
		}
	}
}

func TestItemIDString(t *testing.T) {
	if got := (Item{"id": json.Number("7")}).IDString(); got != "7" {
		t.Fatalf("unexpected id string %q", got)
	}
	if got := (Item{}).IDString(); got != "" {
		t.Fatalf("expected empty id string, got %q", got)
	}
}

func TestStorageErrorWrapping(t *testing.T) {
	err := storageError("add", ErrInvalidKey)
	var se *StorageError
	if !errors.As(err, &se) || se.Op != "add" {
		t.Fatalf("expected add StorageError, got %#v", err)
	}
	if !errors.Is(err, ErrStorageUnavailable) || !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected both sentinels to match, got %v", err)
	}
	if storageError("list", err) != err {
		t.Fatal("expected existing StorageError to pass through unchanged")
	}
	if storageError("list", nil) != nil {
		t.Fatal("expected nil for nil cause")
	}
}
