package codec

// Codec is the contract shared by every element codec: pack one value of
// type T by appending its wire form to a buffer, and decode one value by
// advancing a cursor.
type Codec[T any] interface {
	// Append appends the wire encoding of v to dst and returns the
	// extended buffer.
	Append(dst []byte, v T) ([]byte, error)

	// Read decodes one value from cur, advancing it past exactly the
	// bytes consumed.
	Read(cur *Cursor) (T, error)
}

// Pack encodes a single value through c into a fresh buffer.
func Pack[T any](c Codec[T], v T) ([]byte, error) {
	return c.Append(nil, v)
}

// Unpack decodes a single value from data. The whole buffer must be
// consumed; trailing bytes fail with IncompleteParseError.
func Unpack[T any](c Codec[T], data []byte) (T, error) {
	v, n, err := UnpackPrefix(c, data)
	if err != nil {
		var zero T
		return zero, err
	}
	if n != len(data) {
		var zero T
		return zero, &IncompleteParseError{Consumed: n, Total: len(data)}
	}
	return v, nil
}

// UnpackPrefix decodes a single value from the front of data and reports
// how many bytes were consumed.
func UnpackPrefix[T any](c Codec[T], data []byte) (T, int, error) {
	cur := NewCursor(data)
	v, err := c.Read(cur)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return v, cur.Offset(), nil
}
