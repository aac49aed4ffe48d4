package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestSequence_RoundTrip(t *testing.T) {
	c := Sequence[uint64](Uvarint(LittleEndian, 64), Uvarint(LittleEndian, 64))

	testCases := []struct {
		name   string
		values []uint64
	}{
		{name: "empty", values: []uint64{}},
		{name: "single", values: []uint64{42}},
		{name: "several", values: []uint64{0, 1, 127, 128, 300, 1 << 40}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			packed, err := Pack(c, tc.values)
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}

			decoded, err := Unpack(c, packed)
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if len(decoded) != len(tc.values) {
				t.Fatalf("Length mismatch: got %d, want %d", len(decoded), len(tc.values))
			}
			for i := range tc.values {
				if decoded[i] != tc.values[i] {
					t.Errorf("Element %d mismatch: got %d, want %d", i, decoded[i], tc.values[i])
				}
			}
		})
	}
}

func TestSequence_WireFormat(t *testing.T) {
	c := Sequence[uint64](FixedUint(16, BigEndian), Uvarint(LittleEndian, 64))

	packed, err := Pack(c, []uint64{1, 2})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	want := []byte{0x02, 0x00, 0x01, 0x00, 0x02}
	if !bytes.Equal(packed, want) {
		t.Errorf("Pack bytes mismatch: got %x, want %x", packed, want)
	}
}

func TestSequence_OfStrings(t *testing.T) {
	length := Uvarint(LittleEndian, 64)
	c := Sequence[string](Varchar(length), length)

	values := []string{"", "a", "hello world"}
	packed, err := Pack(c, values)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	decoded, err := Unpack(c, packed)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, values) {
		t.Errorf("Round trip mismatch: got %q, want %q", decoded, values)
	}
}

func TestSequence_Nested(t *testing.T) {
	length := Uvarint(LittleEndian, 64)
	inner := Sequence[uint64](length, length)
	c := Sequence[[]uint64](inner, length)

	values := [][]uint64{{1, 2}, {}, {300}}
	packed, err := Pack(c, values)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	decoded, err := Unpack(c, packed)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, values) {
		t.Errorf("Round trip mismatch: got %v, want %v", decoded, values)
	}
}

func TestSequence_ElementErrorPropagates(t *testing.T) {
	c := Sequence[uint64](FixedUint(32, BigEndian), Uvarint(LittleEndian, 64))

	// Count says two elements, but only one and a half follow.
	data := []byte{0x02, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00}
	_, err := Unpack(c, data)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Expected OutOfBoundsError, got %v", err)
	}
	if oob.Type != "integer" {
		t.Errorf("Error type mismatch: got %q", oob.Type)
	}
}

func TestSequence_CorruptCount(t *testing.T) {
	c := Sequence[uint64](FixedUint(32, BigEndian), Uvarint(LittleEndian, 64))

	// A huge declared count with almost no data behind it must fail on
	// element decode rather than try to allocate up front.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F, 0x00}
	_, err := Unpack(c, data)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Expected OutOfBoundsError, got %v", err)
	}
}
