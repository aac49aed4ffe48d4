// Package format composes an ordered list of element codecs into a single
// record codec.
//
// A Format packs a matching list of values into one concatenated byte
// string and unpacks such a byte string back into the ordered tuple of
// decoded values. The element list is fixed when the format is built;
// evaluation is strictly left to right with no lookahead, and the shared
// read cursor is committed as each element consumes its bytes.
//
//	f := format.New(
//	    format.Elem(codec.FixedUint(16, codec.BigEndian)),
//	    format.Elem(codec.FixedString(2, codec.PadSpace)),
//	    format.Elem(codec.Uvarint(codec.LittleEndian, 64)),
//	    format.Elem(codec.Varchar(codec.Uvarint(codec.LittleEndian, 64))),
//	)
//	packed, err := f.Pack(uint64(1), "a", uint64(300), "abc")
//	values, err := f.Unpack(packed)
//
// The wire form is the plain concatenation of each element's encoding: no
// alignment, separators, headers or trailers.
//
// Unpack is strict and fails with IncompleteParseError when bytes remain
// after the last element; UnpackPrefix tolerates trailing bytes and also
// reports the final cursor position. The Pos sentinel can be placed in a
// format to surface the cursor position inside the decoded tuple without
// consuming bytes.
//
// Formats are stateless once built and safe for concurrent use.
package format
