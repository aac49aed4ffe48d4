package format

import (
	"fmt"

	"github.com/ssargent/brokkr/pkg/codec"
)

// Element is one slot of a Format. Build value-carrying elements with
// Elem and sentinels with Pos.
type Element interface {
	appendValue(dst []byte, v any) ([]byte, error)
	readValue(cur *codec.Cursor) (any, error)
	takesValue() bool
}

// Elem adapts a typed codec into a format element. The slot accepts pack
// values of exactly the codec's value type; anything else fails with
// InvalidInputError.
func Elem[T any](c codec.Codec[T]) Element {
	return element[T]{c: c}
}

type element[T any] struct {
	c codec.Codec[T]
}

func (e element[T]) appendValue(dst []byte, v any) ([]byte, error) {
	tv, ok := v.(T)
	if !ok {
		var want T
		return nil, &codec.InvalidInputError{
			Codec:  "format",
			Reason: fmt.Sprintf("cannot pack %T into a %T slot", v, want),
		}
	}
	return e.c.Append(dst, tv)
}

func (e element[T]) readValue(cur *codec.Cursor) (any, error) {
	return e.c.Read(cur)
}

func (e element[T]) takesValue() bool { return true }

// Format is an ordered composition of element codecs treated as one
// record codec. Formats are stateless and safe to share.
type Format struct {
	elems []Element
	arity int
}

// New builds a format over the given elements. The element list, and with
// it the record layout, is fixed from here on.
func New(elems ...Element) *Format {
	f := &Format{elems: elems}
	for _, e := range elems {
		if e.takesValue() {
			f.arity++
		}
	}
	return f
}

// Arity returns the number of values Pack expects. Sentinel elements do
// not count.
func (f *Format) Arity() int {
	return f.arity
}

// NumElements returns the number of slots in the decoded tuple.
func (f *Format) NumElements() int {
	return len(f.elems)
}

// Pack encodes the given values in element order and returns the
// concatenated byte string. The value count must match the format's
// arity and each value's type must match its slot. On failure no partial
// output is returned.
func (f *Format) Pack(values ...any) ([]byte, error) {
	if len(values) != f.arity {
		return nil, &codec.InvalidInputError{
			Codec:  "format",
			Reason: fmt.Sprintf("got %d values for %d slots", len(values), f.arity),
		}
	}
	var out []byte
	var err error
	next := 0
	for _, e := range f.elems {
		if !e.takesValue() {
			continue
		}
		out, err = e.appendValue(out, values[next])
		if err != nil {
			return nil, err
		}
		next++
	}
	return out, nil
}

// Unpack decodes data into one value per element, in declaration order.
// The buffer must be fully consumed; trailing bytes fail with
// IncompleteParseError.
func (f *Format) Unpack(data []byte) ([]any, error) {
	values, end, err := f.UnpackPrefix(data)
	if err != nil {
		return nil, err
	}
	if end != len(data) {
		return nil, &codec.IncompleteParseError{Consumed: end, Total: len(data)}
	}
	return values, nil
}

// UnpackPrefix decodes data like Unpack but tolerates trailing bytes,
// returning the decoded tuple together with the final cursor position.
func (f *Format) UnpackPrefix(data []byte) ([]any, int, error) {
	cur := codec.NewCursor(data)
	values := make([]any, 0, len(f.elems))
	for _, e := range f.elems {
		v, err := e.readValue(cur)
		if err != nil {
			return nil, 0, err
		}
		values = append(values, v)
	}
	return values, cur.Offset(), nil
}
