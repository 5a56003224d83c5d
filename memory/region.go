package memory

// Region is a bounds-checked view of a block of target memory, given by
// a byte buffer and the address its first byte occupies. The buffer is
// borrowed: a Region never mutates it.
type Region struct {
	base uint64
	data []byte
}

// NewRegion returns a view of data as target memory starting at base.
func NewRegion(base uint64, data []byte) *Region {
	return &Region{base: base, data: data}
}

// BaseAddr returns the address of the first byte of the region.
func (r *Region) BaseAddr() uint64 {
	return r.base
}

// Size returns the region's length in bytes.
func (r *Region) Size() int {
	return len(r.data)
}

// IsEmpty reports whether the region holds no bytes.
func (r *Region) IsEmpty() bool {
	return len(r.data) == 0
}

// ReadAt decodes one value of type T stored at addr inside the region.
// It fails when addr is below the region's base or when fewer than
// Width[T]() bytes remain at addr. Callers treat failure as "address
// unavailable", not as a hard error.
func ReadAt[T Value](r *Region, addr uint64, order ByteOrder) (value T, ok bool) {
	if addr < r.base {
		return
	}

	index := addr - r.base
	if index > uint64(len(r.data)) {
		return
	}

	return ReadValue[T](r.data[index:], order)
}
