package compressor

import "errors"

// Errors returned by the codecs, the container layer and the engine. They are
// wrapped with context as they travel up; match them with errors.Is.
var (
	ErrEmptyInput            = errors.New("input is empty")
	ErrCorruptHeader         = errors.New("corrupt header")
	ErrInvalidFrequencyTable = errors.New("invalid frequency table")
	ErrInvalidEncoding       = errors.New("invalid huffman encoding")
	ErrInvalidMatch          = errors.New("invalid lz77 back-reference")
	ErrBadMagic              = errors.New("not a .comp file (bad magic)")
	ErrUnsupportedVersion    = errors.New("unsupported file version")
	ErrTruncatedFile         = errors.New("truncated file")
	ErrSizeMismatch          = errors.New("size mismatch after decompression")
	ErrChecksumMismatch      = errors.New("file integrity check failed (crc32 mismatch)")
	ErrAllocationFailure     = errors.New("allocation failure")
	ErrUnsupportedAlgorithm  = errors.New("unsupported compression algorithm")
	ErrInvalidLevel          = errors.New("compression level must be between 1 and 9")
	ErrOutputExists          = errors.New("output file exists (use -f to force overwrite)")
)
