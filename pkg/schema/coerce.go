package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce converts loosely typed values, as produced by JSON decoding,
// into the Go types a definition's slots expect. Sentinel fields take no
// value and are skipped; the input length must match the definition's
// value-taking arity.
func Coerce(fields []Field, values []any) ([]any, error) {
	slots := valueFields(fields)
	if len(values) != len(slots) {
		return nil, fmt.Errorf("got %d values for %d slots", len(values), len(slots))
	}
	out := make([]any, len(values))
	for i, f := range slots {
		v, err := coerceValue(f, values[i])
		if err != nil {
			return nil, fmt.Errorf("value %d (%s): %w", i, f, err)
		}
		out[i] = v
	}
	return out, nil
}

// CoerceStrings converts command-line arguments into slot values.
// Sequence arguments are comma-separated lists of element values; an
// empty argument is an empty sequence.
func CoerceStrings(fields []Field, args []string) ([]any, error) {
	slots := valueFields(fields)
	if len(args) != len(slots) {
		return nil, fmt.Errorf("got %d arguments for %d slots", len(args), len(slots))
	}
	out := make([]any, len(args))
	for i, f := range slots {
		v, err := coerceString(f, args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, f, err)
		}
		out[i] = v
	}
	return out, nil
}

func valueFields(fields []Field) []Field {
	slots := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Type != "pos" {
			slots = append(slots, f)
		}
	}
	return slots
}

func coerceValue(f Field, v any) (any, error) {
	switch f.Type {
	case "uint", "uvarint":
		return toUint64(v)
	case "int", "varint":
		return toInt64(v)
	case "fixed_string", "varchar":
		switch s := v.(type) {
		case string:
			return s, nil
		case []byte:
			return string(s), nil
		}
		return nil, fmt.Errorf("expected a string, got %T", v)
	case "sequence":
		items, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("expected a list, got %T", v)
		}
		out := make([]any, len(items))
		for i, item := range items {
			cv, err := coerceValue(*f.Elem, item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = cv
		}
		return out, nil
	}
	return nil, fmt.Errorf("field type %q takes no value", f.Type)
}

func coerceString(f Field, arg string) (any, error) {
	switch f.Type {
	case "uint", "uvarint":
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad unsigned integer %q", arg)
		}
		return v, nil
	case "int", "varint":
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", arg)
		}
		return v, nil
	case "fixed_string", "varchar":
		return arg, nil
	case "sequence":
		if arg == "" {
			return []any{}, nil
		}
		parts := strings.Split(arg, ",")
		out := make([]any, len(parts))
		for i, part := range parts {
			v, err := coerceString(*f.Elem, part)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("field type %q takes no value", f.Type)
}

func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case uint64:
		return n, nil
	case uint:
		return uint64(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", n)
		}
		return uint64(n), nil
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, fmt.Errorf("value %v is not an unsigned integer", n)
		}
		return uint64(n), nil
	case string:
		parsed, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad unsigned integer %q", n)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("expected an unsigned integer, got %T", v)
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows a signed field", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("value %v is not an integer", n)
		}
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad integer %q", n)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("expected an integer, got %T", v)
}
