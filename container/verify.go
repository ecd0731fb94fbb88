package container

import (
	"fmt"

	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/compressor/checksum"
)

// Verify reports whether original matches the size and checksum in h.
func Verify(original []byte, h *Header) bool {
	return Check(original, h) == nil
}

// Check is Verify with the reason for a failure: ErrSizeMismatch is tested
// before ErrChecksumMismatch.
func Check(original []byte, h *Header) error {
	if uint64(len(original)) != uint64(h.OriginalSize) {
		return fmt.Errorf("%w: got %d bytes, header records %d", compressor.ErrSizeMismatch, len(original), h.OriginalSize)
	}
	if sum := checksum.CRC32(original); sum != h.CRC32 {
		return fmt.Errorf("%w: got 0x%08X, header records 0x%08X", compressor.ErrChecksumMismatch, sum, h.CRC32)
	}
	return nil
}
