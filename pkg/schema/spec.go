package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSpec parses a compact field-spec string into a field list. Tokens
// are separated by whitespace or commas:
//
//	u8 u16 u32 u64      fixed unsigned integer, big-endian
//	i8 i16 i32 i64      fixed signed integer, big-endian
//	u16le i32le         little-endian variants (be is accepted too)
//	cu cu8 cu16be       compressed unsigned integer, width and digit order
//	cs cs32             compressed signed (zigzag) integer
//	s4 s4:space s4:null fixed-length string with padding policy
//	v                   varchar with the default compressed length prefix
//	seq(u32)            sequence of another single-token field
//	pos                 cursor position sentinel
func ParseSpec(spec string) ([]Field, error) {
	tokens := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty field spec")
	}

	fields := make([]Field, 0, len(tokens))
	for _, tok := range tokens {
		f, err := parseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", tok, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseToken(tok string) (Field, error) {
	switch tok {
	case "pos":
		return Field{Type: "pos"}, nil
	case "v":
		return Field{Type: "varchar"}, nil
	}

	if inner, ok := strings.CutPrefix(tok, "seq("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return Field{}, fmt.Errorf("unterminated seq(")
		}
		elem, err := parseToken(inner)
		if err != nil {
			return Field{}, err
		}
		return Field{Type: "sequence", Elem: &elem}, nil
	}

	if rest, ok := strings.CutPrefix(tok, "cu"); ok {
		return parseVarintToken("uvarint", rest)
	}
	if rest, ok := strings.CutPrefix(tok, "cs"); ok {
		return parseVarintToken("varint", rest)
	}

	if rest, ok := strings.CutPrefix(tok, "s"); ok && rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		return parseStringToken(rest)
	}

	if rest, ok := strings.CutPrefix(tok, "u"); ok && rest != "" {
		return parseFixedToken("uint", rest)
	}
	if rest, ok := strings.CutPrefix(tok, "i"); ok && rest != "" {
		return parseFixedToken("int", rest)
	}

	return Field{}, fmt.Errorf("unknown field type")
}

// parseFixedToken handles the width-and-order tail of u/i tokens,
// e.g. "16", "32le", "64be".
func parseFixedToken(typ, rest string) (Field, error) {
	bits, order, err := splitWidthOrder(rest)
	if err != nil {
		return Field{}, err
	}
	if bits == 0 {
		return Field{}, fmt.Errorf("missing integer width")
	}
	if err := checkBits(bits); err != nil {
		return Field{}, err
	}
	return Field{Type: typ, Bits: bits, Order: order}, nil
}

// parseVarintToken handles the optional width-and-order tail of cu/cs
// tokens, e.g. "", "16", "be", "32be".
func parseVarintToken(typ, rest string) (Field, error) {
	bits, order, err := splitWidthOrder(rest)
	if err != nil {
		return Field{}, err
	}
	if bits != 0 {
		if err := checkBits(bits); err != nil {
			return Field{}, err
		}
	}
	return Field{Type: typ, Bits: bits, Order: order}, nil
}

func parseStringToken(rest string) (Field, error) {
	lengthPart, padding, hasPad := strings.Cut(rest, ":")
	length, err := strconv.Atoi(lengthPart)
	if err != nil || length < 0 {
		return Field{}, fmt.Errorf("bad string length %q", lengthPart)
	}
	f := Field{Type: "fixed_string", Length: length}
	if hasPad {
		switch padding {
		case "none", "null", "space":
			f.Padding = padding
		default:
			return Field{}, fmt.Errorf("unknown padding %q", padding)
		}
	}
	return f, nil
}

// splitWidthOrder separates a trailing le/be marker from a decimal width.
// Both parts are optional.
func splitWidthOrder(s string) (int, string, error) {
	order := ""
	if rest, ok := strings.CutSuffix(s, "le"); ok {
		order = "little"
		s = rest
	} else if rest, ok := strings.CutSuffix(s, "be"); ok {
		order = "big"
		s = rest
	}
	if s == "" {
		return 0, order, nil
	}
	bits, err := strconv.Atoi(s)
	if err != nil {
		return 0, "", fmt.Errorf("bad integer width %q", s)
	}
	return bits, order, nil
}
