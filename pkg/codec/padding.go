package codec

import (
	"fmt"
	"strings"
)

// Padding is the policy a fixed-length string codec applies to bring a
// value to the declared length on pack and to strip filler on unpack.
// Implementations are stateless.
type Padding interface {
	// Pad extends s to exactly n bytes, or rejects it with
	// InvalidInputError when it cannot.
	Pad(s string, n int) (string, error)

	// Strip removes padding from a decoded value.
	Strip(s string) string
}

// PadNone accepts only values whose length already matches the declared
// length. Strip is the identity.
var PadNone Padding = padNone{}

type padNone struct{}

func (padNone) Pad(s string, n int) (string, error) {
	if len(s) != n {
		return "", &InvalidInputError{
			Codec:  "fixed string",
			Reason: fmt.Sprintf("length %d does not match declared length %d", len(s), n),
		}
	}
	return s, nil
}

func (padNone) Strip(s string) string { return s }

// BytePad returns a policy that right-fills short values with fill and
// strips the maximal trailing run of fill on decode. Round-tripping a
// value whose last byte equals fill is therefore lossy.
func BytePad(fill byte) Padding {
	return bytePad{fill: fill}
}

// PadNull and PadSpace are the common byte fills.
var (
	PadNull  = BytePad(0x00)
	PadSpace = BytePad(' ')
)

type bytePad struct {
	fill byte
}

func (p bytePad) Pad(s string, n int) (string, error) {
	if len(s) > n {
		return "", &InvalidInputError{
			Codec:  "fixed string",
			Reason: fmt.Sprintf("length %d exceeds declared length %d", len(s), n),
		}
	}
	return s + strings.Repeat(string([]byte{p.fill}), n-len(s)), nil
}

func (p bytePad) Strip(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == p.fill {
		i--
	}
	return s[:i]
}
