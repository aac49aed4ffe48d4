package format

import "github.com/ssargent/brokkr/pkg/codec"

// Pos returns a sentinel element that consumes no bytes and takes no pack
// value. During unpack its tuple slot holds the current cursor offset as
// an int, letting callers observe how many bytes the preceding elements
// consumed or resume parsing from there.
func Pos() Element {
	return pos{}
}

type pos struct{}

func (pos) appendValue(dst []byte, v any) ([]byte, error) {
	return dst, nil
}

func (pos) readValue(cur *codec.Cursor) (any, error) {
	return cur.Offset(), nil
}

func (pos) takesValue() bool { return false }
