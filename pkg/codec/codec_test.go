package codec

import (
	"errors"
	"testing"
)

func TestUnpack_Strict(t *testing.T) {
	c := Uvarint(LittleEndian, 64)

	packed, err := Pack(c, 300)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	t.Run("exact buffer decodes", func(t *testing.T) {
		v, err := Unpack(c, packed)
		if err != nil {
			t.Fatalf("Unpack failed: %v", err)
		}
		if v != 300 {
			t.Errorf("Value mismatch: got %d, want 300", v)
		}
	})

	t.Run("trailing byte rejected", func(t *testing.T) {
		_, err := Unpack(c, append(append([]byte{}, packed...), 0x00))
		var incomplete *IncompleteParseError
		if !errors.As(err, &incomplete) {
			t.Fatalf("Expected IncompleteParseError, got %v", err)
		}
		if incomplete.Consumed != len(packed) || incomplete.Total != len(packed)+1 {
			t.Errorf("Error positions mismatch: consumed %d of %d", incomplete.Consumed, incomplete.Total)
		}
	})
}

func TestUnpackPrefix(t *testing.T) {
	c := Uvarint(LittleEndian, 64)

	packed, err := Pack(c, 300)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	data := append(append([]byte{}, packed...), 0xAA, 0xBB)

	v, n, err := UnpackPrefix(c, data)
	if err != nil {
		t.Fatalf("UnpackPrefix failed: %v", err)
	}
	if v != 300 {
		t.Errorf("Value mismatch: got %d, want 300", v)
	}
	if n != len(packed) {
		t.Errorf("Consumed mismatch: got %d, want %d", n, len(packed))
	}
}

func TestCursor_Advances(t *testing.T) {
	cur := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})

	if cur.Offset() != 0 || cur.Remaining() != 4 {
		t.Fatalf("Fresh cursor state wrong: offset %d remaining %d", cur.Offset(), cur.Remaining())
	}

	b, err := cur.Next(2, "test")
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if b[0] != 0x01 || b[1] != 0x02 {
		t.Errorf("Next returned wrong bytes: %x", b)
	}
	if cur.Offset() != 2 || cur.Remaining() != 2 {
		t.Errorf("Cursor state wrong after Next: offset %d remaining %d", cur.Offset(), cur.Remaining())
	}

	one, err := cur.NextByte("test")
	if err != nil {
		t.Fatalf("NextByte failed: %v", err)
	}
	if one != 0x03 {
		t.Errorf("NextByte returned %x, want 03", one)
	}

	// Asking past the end leaves a typed error naming the caller.
	_, err = cur.Next(2, "test")
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Expected OutOfBoundsError, got %v", err)
	}
	if oob.Type != "test" || oob.Need != 2 || oob.Have != 1 {
		t.Errorf("Error fields wrong: %+v", oob)
	}
}

func TestErrors_Messages(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid input",
			err:  &InvalidInputError{Codec: "fixed string", Reason: "length 3 does not match declared length 4"},
			want: "fixed string: invalid input: length 3 does not match declared length 4",
		},
		{
			name: "out of bounds",
			err:  &OutOfBoundsError{Type: "integer", Need: 4, Have: 1},
			want: "out of bounds decoding integer: need 4 bytes, have 1",
		},
		{
			name: "overlong",
			err:  &OverlongError{Codec: "compressed integer", Bits: 16},
			want: "compressed integer: encoded value exceeds 16 bits",
		},
		{
			name: "incomplete parse",
			err:  &IncompleteParseError{Consumed: 9, Total: 10},
			want: "incomplete parse: consumed 9 of 10 bytes",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() != tc.want {
				t.Errorf("Message mismatch: got %q, want %q", tc.err.Error(), tc.want)
			}
		})
	}
}
