package codec

import "encoding/binary"

// ByteOrder selects the byte order of fixed-width integer codecs and the
// digit order of variable-length integer codecs.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
	NativeEndian // whichever of little/big matches the host
)

// hostOrder is the machine byte order, resolved once at startup.
var hostOrder = func() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return LittleEndian
	}
	return BigEndian
}()

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	case NativeEndian:
		return "native"
	}
	return "unknown"
}

// resolved maps NativeEndian to the concrete host order.
func (o ByteOrder) resolved() ByteOrder {
	if o == NativeEndian {
		return hostOrder
	}
	return o
}

func (o ByteOrder) order() binary.ByteOrder {
	if o.resolved() == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// putUint writes the low size bytes of v into dst under o. dst must hold
// at least size bytes; length checks belong to the caller.
func putUint(dst []byte, size int, o ByteOrder, v uint64) {
	switch size {
	case 1:
		dst[0] = byte(v)
	case 2:
		o.order().PutUint16(dst, uint16(v))
	case 4:
		o.order().PutUint32(dst, uint32(v))
	default:
		o.order().PutUint64(dst, v)
	}
}

// getUint reads a size-byte unsigned integer from src under o.
func getUint(src []byte, size int, o ByteOrder) uint64 {
	switch size {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(o.order().Uint16(src))
	case 4:
		return uint64(o.order().Uint32(src))
	default:
		return o.order().Uint64(src)
	}
}
