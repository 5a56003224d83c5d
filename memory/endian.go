package memory

import "encoding/binary"

// ByteOrder selects how multi-byte register values are decoded from raw
// memory bytes.
type ByteOrder int

const (
	BO_NATIVE        ByteOrder = iota // Byte order of the host platform.
	BO_LITTLE_ENDIAN                  // Least significant byte first.
	BO_BIG_ENDIAN                     // Most significant byte first.
)

var nativeBig = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234

// IsBigEndian reports whether values decode most significant byte first.
// BO_NATIVE reports the host platform's order.
func (bo ByteOrder) IsBigEndian() bool {
	switch bo {
	case BO_BIG_ENDIAN:
		return true
	case BO_LITTLE_ENDIAN:
		return false
	}

	return nativeBig
}
