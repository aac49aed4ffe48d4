package codec

// Strings are treated as opaque byte sequences throughout; no character
// encoding is assumed or converted.

// FixedString returns a codec for a string stored in exactly length
// bytes, shaped by the given padding policy.
func FixedString(length int, pad Padding) Codec[string] {
	if length < 0 {
		panic("codec: negative fixed string length")
	}
	return fixedString{length: length, pad: pad}
}

type fixedString struct {
	length int
	pad    Padding
}

func (c fixedString) Append(dst []byte, v string) ([]byte, error) {
	padded, err := c.pad.Pad(v, c.length)
	if err != nil {
		return nil, err
	}
	return append(dst, padded...), nil
}

func (c fixedString) Read(cur *Cursor) (string, error) {
	b, err := cur.Next(c.length, "fixed string")
	if err != nil {
		return "", err
	}
	// string(b) copies, so the result does not alias the input buffer.
	return c.pad.Strip(string(b)), nil
}

// Varchar returns a codec for a length-prefixed string. Any codec that
// decodes to uint64 can serve as the length encoder.
func Varchar(length Codec[uint64]) Codec[string] {
	return varchar{length: length}
}

type varchar struct {
	length Codec[uint64]
}

func (c varchar) Append(dst []byte, v string) ([]byte, error) {
	dst, err := c.length.Append(dst, uint64(len(v)))
	if err != nil {
		return nil, err
	}
	return append(dst, v...), nil
}

func (c varchar) Read(cur *Cursor) (string, error) {
	n, err := c.length.Read(cur)
	if err != nil {
		return "", err
	}
	if n > uint64(cur.Remaining()) {
		return "", &OutOfBoundsError{Type: "varchar", Need: int(n), Have: cur.Remaining()}
	}
	b, err := cur.Next(int(n), "varchar")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
