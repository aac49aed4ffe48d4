package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/brokkr/pkg/codec"
	"github.com/ssargent/brokkr/pkg/format"
)

// Field describes one element of a format definition.
type Field struct {
	Type    string `yaml:"type"`              // uint, int, uvarint, varint, fixed_string, varchar, sequence, pos
	Bits    int    `yaml:"bits,omitempty"`    // integer width; defaults per type
	Order   string `yaml:"order,omitempty"`   // little, big, native
	Length  int    `yaml:"length,omitempty"`  // fixed_string length
	Padding string `yaml:"padding,omitempty"` // none, null, space
	Prefix  *Field `yaml:"prefix,omitempty"`  // length codec for varchar and sequence
	Elem    *Field `yaml:"elem,omitempty"`    // sequence element
}

// Defaults: fixed-width integers are big-endian (network order) and 32
// bits wide; variable-length integers carry their least significant digit
// first and allow the full 64 bits; fixed strings take no padding.
const (
	defaultFixedBits  = 32
	defaultVarintBits = 64
)

func (f Field) bits(def int) int {
	if f.Bits == 0 {
		return def
	}
	return f.Bits
}

func (f Field) order(def codec.ByteOrder) (codec.ByteOrder, error) {
	switch f.Order {
	case "":
		return def, nil
	case "little":
		return codec.LittleEndian, nil
	case "big":
		return codec.BigEndian, nil
	case "native":
		return codec.NativeEndian, nil
	}
	return 0, fmt.Errorf("unknown byte order %q", f.Order)
}

func (f Field) padding() (codec.Padding, error) {
	switch f.Padding {
	case "", "none":
		return codec.PadNone, nil
	case "null":
		return codec.PadNull, nil
	case "space":
		return codec.PadSpace, nil
	}
	return nil, fmt.Errorf("unknown padding %q", f.Padding)
}

func checkBits(bits int) error {
	switch bits {
	case 8, 16, 32, 64:
		return nil
	}
	return fmt.Errorf("unsupported integer width %d", bits)
}

// lengthCodec builds the length encoder for varchar and sequence fields.
// Absent a prefix the default compressed unsigned integer is used; an
// explicit prefix must decode to an unsigned integer.
func lengthCodec(prefix *Field) (codec.Codec[uint64], error) {
	if prefix == nil {
		return codec.Uvarint(codec.LittleEndian, defaultVarintBits), nil
	}
	switch prefix.Type {
	case "uint":
		bits := prefix.bits(defaultFixedBits)
		if err := checkBits(bits); err != nil {
			return nil, err
		}
		order, err := prefix.order(codec.BigEndian)
		if err != nil {
			return nil, err
		}
		return codec.FixedUint(bits, order), nil
	case "uvarint":
		bits := prefix.bits(defaultVarintBits)
		if err := checkBits(bits); err != nil {
			return nil, err
		}
		digits, err := prefix.order(codec.LittleEndian)
		if err != nil {
			return nil, err
		}
		return codec.Uvarint(digits, bits), nil
	}
	return nil, fmt.Errorf("length prefix must be uint or uvarint, not %q", prefix.Type)
}

// element builds the format element a field describes.
func (f Field) element() (format.Element, error) {
	switch f.Type {
	case "uint":
		bits := f.bits(defaultFixedBits)
		if err := checkBits(bits); err != nil {
			return nil, err
		}
		order, err := f.order(codec.BigEndian)
		if err != nil {
			return nil, err
		}
		return format.Elem(codec.FixedUint(bits, order)), nil

	case "int":
		bits := f.bits(defaultFixedBits)
		if err := checkBits(bits); err != nil {
			return nil, err
		}
		order, err := f.order(codec.BigEndian)
		if err != nil {
			return nil, err
		}
		return format.Elem(codec.FixedInt(bits, order)), nil

	case "uvarint":
		bits := f.bits(defaultVarintBits)
		if err := checkBits(bits); err != nil {
			return nil, err
		}
		digits, err := f.order(codec.LittleEndian)
		if err != nil {
			return nil, err
		}
		return format.Elem(codec.Uvarint(digits, bits)), nil

	case "varint":
		bits := f.bits(defaultVarintBits)
		if err := checkBits(bits); err != nil {
			return nil, err
		}
		digits, err := f.order(codec.LittleEndian)
		if err != nil {
			return nil, err
		}
		return format.Elem(codec.Varint(digits, bits)), nil

	case "fixed_string":
		if f.Length <= 0 {
			return nil, fmt.Errorf("fixed_string needs a positive length")
		}
		pad, err := f.padding()
		if err != nil {
			return nil, err
		}
		return format.Elem(codec.FixedString(f.Length, pad)), nil

	case "varchar":
		length, err := lengthCodec(f.Prefix)
		if err != nil {
			return nil, err
		}
		return format.Elem(codec.Varchar(length)), nil

	case "sequence":
		if f.Elem == nil {
			return nil, fmt.Errorf("sequence needs an elem field")
		}
		inner, err := f.Elem.element()
		if err != nil {
			return nil, err
		}
		length, err := lengthCodec(f.Prefix)
		if err != nil {
			return nil, err
		}
		return format.Repeat(inner, length), nil

	case "pos":
		return format.Pos(), nil
	}
	return nil, fmt.Errorf("unknown field type %q", f.Type)
}

// Build assembles a format from an ordered field list.
func Build(fields []Field) (*format.Format, error) {
	elems := make([]format.Element, 0, len(fields))
	for i, f := range fields {
		e, err := f.element()
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		elems = append(elems, e)
	}
	return format.New(elems...), nil
}

// String renders the field in the compact form accepted by ParseSpec
// where possible, falling back to a descriptive rendering. Native byte
// order has no spec marker and is rendered without one, the same as the
// type's default order.
func (f Field) String() string {
	switch f.Type {
	case "uint", "int":
		prefix := "u"
		if f.Type == "int" {
			prefix = "i"
		}
		return fmt.Sprintf("%s%d%s", prefix, f.bits(defaultFixedBits), orderSuffix(f.Order, "big"))
	case "uvarint", "varint":
		prefix := "cu"
		if f.Type == "varint" {
			prefix = "cs"
		}
		width := ""
		if f.Bits != 0 {
			width = strconv.Itoa(f.Bits)
		}
		return prefix + width + orderSuffix(f.Order, "little")
	case "fixed_string":
		s := fmt.Sprintf("s%d", f.Length)
		if f.Padding != "" && f.Padding != "none" {
			s += ":" + f.Padding
		}
		return s
	case "varchar":
		if f.Prefix == nil {
			return "v"
		}
		return fmt.Sprintf("v<%s>", f.Prefix)
	case "sequence":
		elem := "?"
		if f.Elem != nil {
			elem = f.Elem.String()
		}
		if f.Prefix == nil {
			return fmt.Sprintf("seq(%s)", elem)
		}
		return fmt.Sprintf("seq(%s)<%s>", elem, f.Prefix)
	case "pos":
		return "pos"
	}
	return f.Type
}

func orderSuffix(order, def string) string {
	if order == "" || order == def {
		return ""
	}
	return map[string]string{"little": "le", "big": "be", "native": ""}[order]
}

// SpecString renders a whole field list as one compact spec string.
func SpecString(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}
