package codec

import "fmt"

// byteWidth validates a declared integer width and returns it in bytes.
// Widths are definition-time parameters, so an unsupported value is a
// programming error and panics.
func byteWidth(bits int) int {
	switch bits {
	case 8, 16, 32, 64:
		return bits / 8
	}
	panic(fmt.Sprintf("codec: unsupported integer width %d", bits))
}

// FixedUint returns a codec for an unsigned integer stored in exactly
// bits/8 bytes under the given byte order. bits must be 8, 16, 32 or 64.
// Values are encoded modulo 2^bits; decoded values are widened to uint64,
// so any fixed unsigned codec can serve as a length encoder.
func FixedUint(bits int, order ByteOrder) Codec[uint64] {
	return fixedUint{size: byteWidth(bits), order: order}
}

type fixedUint struct {
	size  int
	order ByteOrder
}

func (c fixedUint) Append(dst []byte, v uint64) ([]byte, error) {
	var scratch [8]byte
	putUint(scratch[:c.size], c.size, c.order, v)
	return append(dst, scratch[:c.size]...), nil
}

func (c fixedUint) Read(cur *Cursor) (uint64, error) {
	b, err := cur.Next(c.size, "integer")
	if err != nil {
		return 0, err
	}
	return getUint(b, c.size, c.order), nil
}

// FixedInt returns a codec for a signed two's-complement integer stored
// in exactly bits/8 bytes under the given byte order. Decoded values are
// sign-extended to int64.
func FixedInt(bits int, order ByteOrder) Codec[int64] {
	return fixedInt{size: byteWidth(bits), order: order}
}

type fixedInt struct {
	size  int
	order ByteOrder
}

func (c fixedInt) Append(dst []byte, v int64) ([]byte, error) {
	var scratch [8]byte
	putUint(scratch[:c.size], c.size, c.order, uint64(v))
	return append(dst, scratch[:c.size]...), nil
}

func (c fixedInt) Read(cur *Cursor) (int64, error) {
	b, err := cur.Next(c.size, "integer")
	if err != nil {
		return 0, err
	}
	u := getUint(b, c.size, c.order)
	shift := uint(64 - 8*c.size)
	return int64(u<<shift) >> shift, nil
}
