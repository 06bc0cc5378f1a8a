package pixel

import "fmt"

// Rows describes one rectangular copy job between two row-addressed buffers.
//
// Source and destination strides are independent: either side may be a
// sub-rectangle of a larger buffer whose row pitch exceeds RowBytes.
type Rows struct {
	// SrcStride is the byte distance between the starts of consecutive
	// source rows.
	SrcStride int

	// DstStride is the byte distance between the starts of consecutive
	// destination rows.
	DstStride int

	// RowBytes is the number of bytes copied from each row.
	RowBytes int

	// Count is the number of rows.
	Count int
}

// Validate returns ErrInvalidDescriptor if any dimension is negative.
func (r Rows) Validate() error {
	if r.Count < 0 || r.RowBytes < 0 || r.SrcStride < 0 || r.DstStride < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidDescriptor, r)
	}
	return nil
}

// Tight returns true if both buffers are tightly packed, in which case the
// whole job is a single contiguous copy.
func (r Rows) Tight() bool {
	return r.SrcStride == r.RowBytes && r.DstStride == r.RowBytes
}

// SrcExtent returns the minimum source length the job reads from.
func (r Rows) SrcExtent() int {
	return extent(r.SrcStride, r.RowBytes, r.Count)
}

// DstExtent returns the minimum destination length the job writes to.
func (r Rows) DstExtent() int {
	return extent(r.DstStride, r.RowBytes, r.Count)
}

// extent is (count-1)*stride + rowBytes; the last row needs no padding.
func extent(stride, rowBytes, count int) int {
	if count <= 0 || rowBytes <= 0 {
		return 0
	}
	return (count-1)*stride + rowBytes
}

// CopyRows copies r.Count rows of r.RowBytes bytes from src to dst.
//
// When both strides equal RowBytes the rows are contiguous and are moved
// with one copy. Otherwise each row is copied separately and the source and
// destination offsets advance by their own strides.
//
// Returns ErrInvalidDescriptor if a dimension of r is negative. Buffer
// lengths are not validated: dst must hold r.DstExtent() bytes and src
// r.SrcExtent() bytes, or CopyRows panics with a runtime bounds error.
// Bytes of dst between rows (the stride padding) are never written.
//
// src and dst may overlap only when r.Tight() is true.
func CopyRows(dst, src []byte, r Rows) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.Count == 0 || r.RowBytes == 0 {
		return nil
	}

	if r.Tight() {
		n := r.RowBytes * r.Count
		copy(dst[:n], src[:n])
		return nil
	}

	srcOff, dstOff := 0, 0
	for range r.Count {
		copy(dst[dstOff:dstOff+r.RowBytes], src[srcOff:srcOff+r.RowBytes])
		srcOff += r.SrcStride
		dstOff += r.DstStride
	}
	return nil
}
