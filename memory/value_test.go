package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, Width[uint8]())
	assert.Equal(2, Width[uint16]())
	assert.Equal(4, Width[uint32]())
	assert.Equal(8, Width[uint64]())

	assert.Equal(1, Width[int8]())
	assert.Equal(8, Width[int64]())
}

func TestSigned(t *testing.T) {
	assert := assert.New(t)

	assert.False(Signed[uint8]())
	assert.False(Signed[uint64]())
	assert.True(Signed[int8]())
	assert.True(Signed[int64]())
}

func TestReadValueEndian(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{0x00, 0x01}

	be, ok := ReadValue[uint16](buf, BO_BIG_ENDIAN)
	assert.True(ok)
	assert.Equal(uint16(1), be)

	le, ok := ReadValue[uint16](buf, BO_LITTLE_ENDIAN)
	assert.True(ok)
	assert.Equal(uint16(256), le)

	native, ok := ReadValue[uint16](buf, BO_NATIVE)
	assert.True(ok)
	if BO_NATIVE.IsBigEndian() {
		assert.Equal(be, native)
	} else {
		assert.Equal(le, native)
	}
}

func TestReadValueWide(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99}

	be32, ok := ReadValue[uint32](buf, BO_BIG_ENDIAN)
	assert.True(ok)
	assert.Equal(uint32(0x11223344), be32)

	le32, ok := ReadValue[uint32](buf, BO_LITTLE_ENDIAN)
	assert.True(ok)
	assert.Equal(uint32(0x44332211), le32)

	be64, ok := ReadValue[uint64](buf, BO_BIG_ENDIAN)
	assert.True(ok)
	assert.Equal(uint64(0x1122334455667788), be64)

	le64, ok := ReadValue[uint64](buf, BO_LITTLE_ENDIAN)
	assert.True(ok)
	assert.Equal(uint64(0x8877665544332211), le64)
}

func TestReadValueByte(t *testing.T) {
	assert := assert.New(t)

	// Width 1 ignores the byte order.
	for _, order := range []ByteOrder{BO_NATIVE, BO_LITTLE_ENDIAN, BO_BIG_ENDIAN} {
		value, ok := ReadValue[uint8]([]byte{0xab, 0xcd}, order)
		assert.True(ok)
		assert.Equal(uint8(0xab), value)
	}
}

func TestReadValueShort(t *testing.T) {
	assert := assert.New(t)

	_, ok := ReadValue[uint8](nil, BO_NATIVE)
	assert.False(ok)

	_, ok = ReadValue[uint16]([]byte{0x01}, BO_LITTLE_ENDIAN)
	assert.False(ok)

	_, ok = ReadValue[uint64]([]byte{1, 2, 3, 4, 5, 6, 7}, BO_BIG_ENDIAN)
	assert.False(ok)
}

func TestReadValueSigned(t *testing.T) {
	assert := assert.New(t)

	value, ok := ReadValue[int16]([]byte{0xff, 0xff}, BO_BIG_ENDIAN)
	assert.True(ok)
	assert.Equal(int16(-1), value)

	value, ok = ReadValue[int16]([]byte{0xfe, 0xff}, BO_LITTLE_ENDIAN)
	assert.True(ok)
	assert.Equal(int16(-2), value)
}
