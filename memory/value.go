package memory

import "unsafe"

// Value is the family of fixed-width integer types that can model a
// machine register. The unsigned widths are what memory reads and
// addresses use; the signed variants carry the same bit patterns through
// signed arithmetic.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64
}

// Width returns the number of bytes needed to decode one value of type T.
func Width[T Value]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Signed reports whether T is one of the signed widths.
func Signed[T Value]() bool {
	var zero T
	return zero-1 < 0
}

// ReadValue decodes one value of type T from the front of buf, honoring
// order. It fails when buf holds fewer than Width[T]() bytes. The 1-byte
// widths decode identically under either order.
func ReadValue[T Value](buf []byte, order ByteOrder) (value T, ok bool) {
	width := Width[T]()
	if len(buf) < width {
		return
	}

	var raw uint64
	if order.IsBigEndian() {
		for _, b := range buf[:width] {
			raw = raw<<8 | uint64(b)
		}
	} else {
		for n := width - 1; n >= 0; n-- {
			raw = raw<<8 | uint64(buf[n])
		}
	}

	return T(raw), true
}
