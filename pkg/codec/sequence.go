package codec

// Sequence returns a codec for a length-prefixed list of values encoded
// by elem. The element count is encoded first by length, then each
// element in order. Decoding is eager: all elements are materialized into
// a plain slice before the codec returns.
func Sequence[T any](elem Codec[T], length Codec[uint64]) Codec[[]T] {
	return sequence[T]{elem: elem, length: length}
}

type sequence[T any] struct {
	elem   Codec[T]
	length Codec[uint64]
}

func (c sequence[T]) Append(dst []byte, v []T) ([]byte, error) {
	dst, err := c.length.Append(dst, uint64(len(v)))
	if err != nil {
		return nil, err
	}
	for _, item := range v {
		dst, err = c.elem.Append(dst, item)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (c sequence[T]) Read(cur *Cursor) ([]T, error) {
	n, err := c.length.Read(cur)
	if err != nil {
		return nil, err
	}
	// Cap the initial allocation by the bytes that remain; a corrupt
	// count fails on element decode, not on make.
	hint := n
	if r := uint64(cur.Remaining()); hint > r {
		hint = r
	}
	out := make([]T, 0, hint)
	for i := uint64(0); i < n; i++ {
		item, err := c.elem.Read(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
