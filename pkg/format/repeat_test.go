package format

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/ssargent/brokkr/pkg/codec"
)

func TestRepeat_RoundTrip(t *testing.T) {
	length := codec.Uvarint(codec.LittleEndian, 64)
	f := New(Repeat(Elem(length), length))

	packed, err := f.Pack([]any{uint64(1), uint64(300), uint64(0)})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	want := []byte{0x03, 0x01, 0xAC, 0x02, 0x00}
	if !bytes.Equal(packed, want) {
		t.Errorf("Pack bytes mismatch: got % x, want % x", packed, want)
	}

	values, err := f.Unpack(packed)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	got := values[0].([]any)
	if !reflect.DeepEqual(got, []any{uint64(1), uint64(300), uint64(0)}) {
		t.Errorf("Round trip mismatch: got %v", got)
	}
}

func TestRepeat_Nested(t *testing.T) {
	length := codec.Uvarint(codec.LittleEndian, 64)
	inner := Repeat(Elem(codec.Varchar(length)), length)
	f := New(Repeat(inner, length))

	values := []any{
		[]any{"a", "bc"},
		[]any{},
	}
	packed, err := f.Pack(values)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	decoded, err := f.Unpack(packed)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !reflect.DeepEqual(decoded[0], values) {
		t.Errorf("Round trip mismatch: got %v, want %v", decoded[0], values)
	}
}

func TestRepeat_TypeMismatch(t *testing.T) {
	length := codec.Uvarint(codec.LittleEndian, 64)
	f := New(Repeat(Elem(length), length))

	t.Run("not a slice", func(t *testing.T) {
		_, err := f.Pack(uint64(3))
		var invalid *codec.InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Expected InvalidInputError, got %v", err)
		}
	})

	t.Run("wrong element type", func(t *testing.T) {
		_, err := f.Pack([]any{uint64(1), "oops"})
		var invalid *codec.InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Expected InvalidInputError, got %v", err)
		}
	})
}

func TestRepeat_TruncatedElements(t *testing.T) {
	length := codec.Uvarint(codec.LittleEndian, 64)
	f := New(Repeat(Elem(codec.FixedUint(32, codec.BigEndian)), length))

	// Count of three with only one full element behind it.
	data := []byte{0x03, 0x00, 0x00, 0x00, 0x01, 0x00}
	_, err := f.Unpack(data)
	var oob *codec.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Errorf("Expected OutOfBoundsError, got %v", err)
	}
}
