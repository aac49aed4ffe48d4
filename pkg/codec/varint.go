package codec

const varintName = "compressed integer"

// maxRepr returns the largest value representable in bits.
func maxRepr(bits int) uint64 {
	if bits == 64 {
		return ^uint64(0)
	}
	return 1<<uint(bits) - 1
}

// Uvarint returns a codec for a variable-length unsigned integer using
// continuation-bit base-128 encoding: the high bit of each byte is set on
// every byte except the last, the low seven bits carry one base-128
// digit. digits selects whether the least significant digit comes first
// (LittleEndian) or last (BigEndian). bits must be 8, 16, 32 or 64 and
// caps the decodable value; decoding a larger value fails with
// OverlongError. Packing never fails.
func Uvarint(digits ByteOrder, bits int) Codec[uint64] {
	byteWidth(bits)
	return uvarint{digits: digits.resolved(), bits: bits, max: maxRepr(bits)}
}

type uvarint struct {
	digits ByteOrder
	bits   int
	max    uint64
}

func (c uvarint) Append(dst []byte, v uint64) ([]byte, error) {
	if v == 0 {
		return append(dst, 0x00), nil
	}
	start := len(dst)
	for v > 0 {
		dst = append(dst, byte(v&0x7F)|0x80)
		v >>= 7
	}
	if c.digits == BigEndian {
		for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
			dst[i], dst[j] = dst[j], dst[i]
		}
	}
	dst[len(dst)-1] &^= 0x80
	return dst, nil
}

func (c uvarint) Read(cur *Cursor) (uint64, error) {
	if c.digits == BigEndian {
		return c.readBig(cur)
	}
	return c.readLittle(cur)
}

// readLittle accumulates digits least-significant first. factor wraps to
// zero once it passes 2^63; from there only zero digits are admissible.
func (c uvarint) readLittle(cur *Cursor) (uint64, error) {
	var ret uint64
	factor := uint64(1)
	for {
		b, err := cur.NextByte(varintName)
		if err != nil {
			return 0, err
		}
		digit := uint64(b & 0x7F)
		if factor == 0 {
			if digit > 0 {
				return 0, &OverlongError{Codec: varintName, Bits: c.bits}
			}
		} else {
			if digit > c.max/factor {
				return 0, &OverlongError{Codec: varintName, Bits: c.bits}
			}
			ret += digit * factor
		}
		if b&0x80 == 0 {
			return ret, nil
		}
		factor *= 128
	}
}

// readBig accumulates digits most-significant first.
func (c uvarint) readBig(cur *Cursor) (uint64, error) {
	var ret uint64
	for {
		b, err := cur.NextByte(varintName)
		if err != nil {
			return 0, err
		}
		if ret > c.max/128 {
			return 0, &OverlongError{Codec: varintName, Bits: c.bits}
		}
		ret = ret*128 + uint64(b&0x7F)
		if b&0x80 == 0 {
			return ret, nil
		}
	}
}

// Varint returns a codec for a variable-length signed integer: values are
// zigzag-mapped onto the matching unsigned codec so small magnitudes of
// either sign encode compactly. 0, -1, 1, -2 pack as 00, 01, 02, 03.
func Varint(digits ByteOrder, bits int) Codec[int64] {
	return varint{u: Uvarint(digits, bits), bits: bits}
}

type varint struct {
	u    Codec[uint64]
	bits int
}

func (c varint) Append(dst []byte, v int64) ([]byte, error) {
	// The arithmetic right shift propagates the sign bit so negative
	// inputs flip the shifted low bits.
	zz := uint64(v<<1) ^ uint64(v>>uint(c.bits-1))
	return c.u.Append(dst, zz)
}

func (c varint) Read(cur *Cursor) (int64, error) {
	z, err := c.u.Read(cur)
	if err != nil {
		if _, ok := err.(*OverlongError); ok {
			return 0, &OverlongError{Codec: "signed " + varintName, Bits: c.bits}
		}
		return 0, err
	}
	return int64(z>>1) ^ -int64(z&1), nil
}
