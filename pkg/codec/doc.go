// Package codec provides composable binary codecs for packing and
// unpacking values into compact byte strings.
//
// Each codec maps one logical value to and from its wire form. Codecs are
// configured once, at definition time, and are stateless afterwards: the
// same codec value can be shared freely between goroutines. The codec
// family covers fixed-width integers, variable-length integers with
// continuation-bit encoding, zigzag-encoded signed integers, fixed-length
// padded strings, length-prefixed strings, and length-prefixed sequences.
//
// # Codec Contract
//
// Every codec satisfies the same two-method contract:
//
//	type Codec[T any] interface {
//	    Append(dst []byte, v T) ([]byte, error)
//	    Read(cur *Cursor) (T, error)
//	}
//
// Append appends the wire encoding of a value to a buffer and returns the
// extended buffer. Read decodes one value from a Cursor, advancing it past
// exactly the bytes it consumed. Append and Read are mutual inverses on
// the inputs a codec accepts, and Append is deterministic: the same value
// always produces the same bytes.
//
// # Wire Formats
//
// Fixed-width integers occupy exactly bits/8 bytes in the declared byte
// order, two's complement for the signed variants:
//
//	codec.FixedUint(16, codec.BigEndian).Append(nil, 1)  // 00 01
//
// Variable-length integers use continuation-bit base-128 encoding: the
// high bit of each byte marks that more bytes follow, the low seven bits
// carry one base-128 digit. Digit order is least-significant first for
// LittleEndian and most-significant first for BigEndian:
//
//	codec.Uvarint(codec.LittleEndian, 64).Append(nil, 300)  // AC 02
//
// Signed variable-length integers are zigzag-mapped onto the unsigned
// encoding so that small magnitudes stay short: 0, -1, 1, -2 encode as
// 00, 01, 02, 03.
//
// Fixed-length strings occupy exactly their declared length; a Padding
// policy decides how short values are filled and how filler is stripped
// on decode. Length-prefixed strings and sequences carry their byte or
// element count first, encoded by any codec that decodes to uint64.
//
// # Error Handling
//
// Failures are reported through a closed set of error types:
//
//   - InvalidInputError: a pack input violates a codec precondition.
//   - OutOfBoundsError: an unpack needs more bytes than remain.
//   - OverlongError: a variable-length integer exceeds its declared width.
//   - IncompleteParseError: a strict unpack left bytes unconsumed.
//
// Errors are not recovered locally. When an unpack fails, the cursor state
// is undefined and partial results must not be trusted.
//
// # Ownership
//
// Packed buffers are freshly allocated and owned by the caller. Decoded
// strings and slices are copied out of the input buffer; nothing returned
// by Read aliases the bytes being parsed.
package codec
