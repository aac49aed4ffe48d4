package format

import (
	"fmt"

	"github.com/ssargent/brokkr/pkg/codec"
)

// Repeat returns an element encoding a length-prefixed repetition of any
// other element. Unlike codec.Sequence, which is typed over its element,
// Repeat packs from and unpacks into []any, so repetitions can be built
// from format definitions whose element types are only known at runtime
// and can nest freely.
func Repeat(elem Element, length codec.Codec[uint64]) Element {
	return repeat{elem: elem, length: length}
}

type repeat struct {
	elem   Element
	length codec.Codec[uint64]
}

func (r repeat) appendValue(dst []byte, v any) ([]byte, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, &codec.InvalidInputError{
			Codec:  "sequence",
			Reason: fmt.Sprintf("cannot pack %T as a sequence", v),
		}
	}
	dst, err := r.length.Append(dst, uint64(len(items)))
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		dst, err = r.elem.appendValue(dst, item)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (r repeat) readValue(cur *codec.Cursor) (any, error) {
	n, err := r.length.Read(cur)
	if err != nil {
		return nil, err
	}
	hint := n
	if rem := uint64(cur.Remaining()); hint > rem {
		hint = rem
	}
	out := make([]any, 0, hint)
	for i := uint64(0); i < n; i++ {
		item, err := r.elem.readValue(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (repeat) takesValue() bool { return true }
