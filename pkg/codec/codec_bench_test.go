//go:build bench
// +build bench

package codec

import (
	"strings"
	"testing"
)

func BenchmarkUvarint_Append(b *testing.B) {
	benchmarks := []struct {
		name  string
		value uint64
	}{
		{name: "one byte", value: 100},
		{name: "five bytes", value: 1 << 32},
		{name: "ten bytes", value: ^uint64(0)},
	}

	c := Uvarint(LittleEndian, 64)
	buf := make([]byte, 0, 16)

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := c.Append(buf[:0], bm.value)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUvarint_Read(b *testing.B) {
	c := Uvarint(LittleEndian, 64)

	benchmarks := []struct {
		name  string
		value uint64
	}{
		{name: "one byte", value: 100},
		{name: "five bytes", value: 1 << 32},
		{name: "ten bytes", value: ^uint64(0)},
	}

	for _, bm := range benchmarks {
		data, err := Pack(c, bm.value)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				cur := NewCursor(data)
				if _, err := c.Read(cur); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVarchar_RoundTrip(b *testing.B) {
	c := Varchar(Uvarint(LittleEndian, 64))

	benchmarks := []struct {
		name  string
		value string
	}{
		{name: "small", value: "hello"},
		{name: "medium", value: strings.Repeat("x", 1000)},
		{name: "large", value: strings.Repeat("x", 100000)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				packed, err := Pack(c, bm.value)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := Unpack(c, packed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
