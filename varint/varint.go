// Package varint implements unsigned LEB128-style variable-length integer
// encoding: seven payload bits per byte, little-endian groups, with the high
// bit set on every non-terminal byte. Encoding of 0 is the single byte 0x00.
//
// This mirrors the byte-level shape of mebo's delta/varint timestamp
// encoders (see encoding.TimestampDeltaEncoder), generalized to a standalone
// codec usable outside the columnar encoder machinery.
package varint

import "github.com/wlinknet/wlinknet/errs"

// MaxLen is the maximum number of bytes a 64-bit unsigned varint can occupy.
// 64 bits / 7 bits-per-byte rounds up to 10 bytes; Decode rejects any input
// that would require more, guarding against adversarial or corrupt streams.
const MaxLen = 10

// Size returns the number of bytes Encode would produce for x, without
// allocating. Callers use this to pre-size buffers, the same role
// ColumnarEncoder.Size plays for mebo's columnar encoders.
func Size(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}

	return n
}

// Encode appends the LEB128 encoding of x to dst and returns the grown
// slice, following mebo's append-growth idiom rather than returning
// a freshly allocated slice per call.
func Encode(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}

	return append(dst, byte(x))
}

// Decode reads a single varint starting at the beginning of data.
//
// Returns the decoded value and the number of bytes consumed. Fails with
// errs.ErrMalformedVarint if data ends before the terminating byte, or if
// more than MaxLen bytes would be required.
func Decode(data []byte) (uint64, int, error) {
	var x uint64
	var shift uint

	for i := 0; i < len(data); i++ {
		if i == MaxLen {
			return 0, 0, errs.ErrMalformedVarint
		}

		b := data[i]
		x |= uint64(b&0x7f) << shift

		if b < 0x80 {
			return x, i + 1, nil
		}

		shift += 7
	}

	return 0, 0, errs.ErrMalformedVarint
}
