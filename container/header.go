// Package container reads and writes .comp files: a fixed 292-byte header
// followed immediately by the codec payload.
//
//	offset size field
//	0      4    magic "COMP" (0x434F4D50)
//	4      4    version
//	8      4    algorithm (1 huffman, 2 lz77, 3 hybrid)
//	12     4    level (1-9)
//	16     4    original size
//	20     4    compressed size
//	24     4    crc32 of the original bytes
//	28     8    creation time, unix seconds
//	36     256  original file name, NUL terminated
//
// All integers are little-endian.
package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/FitrahHaque/compfile/compressor"
)

const (
	Magic         = 0x434F4D50
	Version       = 1
	MaxNameLength = 256
	HeaderSize    = 7*4 + 8 + MaxNameLength
)

// Header describes a payload. Its layout is the on-disk layout.
type Header struct {
	Magic          uint32
	Version        uint32
	Algorithm      compressor.Algorithm
	Level          compressor.Level
	OriginalSize   uint32
	CompressedSize uint32
	CRC32          uint32
	Timestamp      uint64
	OriginalName   [MaxNameLength]byte
}

// NewHeader fills in the identification fields. Sizes and checksum are left
// for the caller.
func NewHeader(algorithm compressor.Algorithm, level compressor.Level, name string, created time.Time) *Header {
	h := &Header{
		Magic:     Magic,
		Version:   Version,
		Algorithm: algorithm,
		Level:     level,
		Timestamp: uint64(created.Unix()),
	}
	h.SetName(name)
	return h
}

// SetName stores name, truncated so the terminating NUL always fits.
func (h *Header) SetName(name string) {
	h.OriginalName = [MaxNameLength]byte{}
	copy(h.OriginalName[:MaxNameLength-1], name)
}

func (h *Header) Name() string {
	if i := bytes.IndexByte(h.OriginalName[:], 0); i >= 0 {
		return string(h.OriginalName[:i])
	}
	return string(h.OriginalName[:])
}

func (h *Header) Created() time.Time {
	return time.Unix(int64(h.Timestamp), 0)
}

// Ratio is compressed size over original size, payload only.
func (h *Header) Ratio() float64 {
	if h.OriginalSize == 0 {
		return 0
	}
	return float64(h.CompressedSize) / float64(h.OriginalSize)
}

// SetSizes records both sizes, refusing values the 32-bit fields cannot hold.
func (h *Header) SetSizes(original, compressed int) error {
	if uint64(original) > math.MaxUint32 || uint64(compressed) > math.MaxUint32 {
		return fmt.Errorf("%w: sizes %d/%d do not fit the header", compressor.ErrAllocationFailure, original, compressed)
	}
	h.OriginalSize = uint32(original)
	h.CompressedSize = uint32(compressed)
	return nil
}

// Write emits the header and then the payload with nothing in between.
func Write(w io.Writer, h *Header, payload []byte) error {
	if int64(len(payload)) != int64(h.CompressedSize) {
		return fmt.Errorf("payload is %d bytes but the header records %d", len(payload), h.CompressedSize)
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// ReadHeader reads and validates the fixed header only.
func ReadHeader(r io.Reader) (*Header, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: header needs %d bytes", compressor.ErrTruncatedFile, HeaderSize)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := new(Header)
	if err := binary.Read(bytes.NewReader(raw[:]), binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("%w: %v", compressor.ErrCorruptHeader, err)
	}
	if h.Magic != Magic {
		return nil, fmt.Errorf("%w: 0x%08X", compressor.ErrBadMagic, h.Magic)
	}
	if h.Version > Version {
		return nil, fmt.Errorf("%w: %d (newest supported is %d)", compressor.ErrUnsupportedVersion, h.Version, Version)
	}
	return h, nil
}

// Read reads the header and exactly CompressedSize payload bytes.
func Read(r io.Reader) (*Header, []byte, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, nil, err
	}
	// Grow as data arrives instead of trusting the size field up front.
	var payload bytes.Buffer
	n, err := io.CopyN(&payload, r, int64(h.CompressedSize))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: payload has %d of %d bytes", compressor.ErrTruncatedFile, n, h.CompressedSize)
		}
		return nil, nil, fmt.Errorf("read payload: %w", err)
	}
	return h, payload.Bytes(), nil
}
