// Package compressor holds what the codec packages share: algorithm and level
// identifiers, the Codec interface and the error values.
package compressor

import (
	"fmt"
	"strconv"
	"strings"
)

// Algorithm identifies the codec that produced a container payload. The
// numeric values are part of the file format.
type Algorithm uint32

const (
	Huffman Algorithm = 1
	LZ77    Algorithm = 2
	Hybrid  Algorithm = 3 // LZ77 followed by Huffman
)

// Algorithms lists the supported algorithms in id order.
var Algorithms = [...]Algorithm{Huffman, LZ77, Hybrid}

func (a Algorithm) String() string {
	switch a {
	case Huffman:
		return "huffman"
	case LZ77:
		return "lz77"
	case Hybrid:
		return "hybrid"
	default:
		return "unknown(" + strconv.FormatUint(uint64(a), 10) + ")"
	}
}

// Description is the long, human readable name of the algorithm.
func (a Algorithm) Description() string {
	switch a {
	case Huffman:
		return "Huffman coding"
	case LZ77:
		return "LZ77"
	case Hybrid:
		return "Hybrid (LZ77+Huffman)"
	default:
		return "Unknown"
	}
}

func (a Algorithm) Valid() bool {
	return a >= Huffman && a <= Hybrid
}

// ParseAlgorithm accepts the names printed by Algorithm.String.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "huffman":
		return Huffman, nil
	case "lz77":
		return LZ77, nil
	case "hybrid":
		return Hybrid, nil
	}
	return 0, fmt.Errorf("%w: %q (use huffman, lz77 or hybrid)", ErrUnsupportedAlgorithm, name)
}

// Level trades speed for ratio: 1 is fastest, 9 compresses best.
type Level uint32

const (
	LevelFast   Level = 1
	LevelNormal Level = 5
	LevelBest   Level = 9
)

func (l Level) Valid() bool {
	return l >= LevelFast && l <= LevelBest
}

func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(LevelFast) || n > int(LevelBest) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return Level(n), nil
}

// Codec is one compression algorithm working on whole in-memory buffers.
// Implementations keep no state between calls.
type Codec interface {
	Compress(src []byte, level Level) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
}

// CodecFuncs adapts a pair of functions to the Codec interface.
type CodecFuncs struct {
	CompressFunc   func(src []byte, level Level) ([]byte, error)
	DecompressFunc func(src []byte) ([]byte, error)
}

func (c CodecFuncs) Compress(src []byte, level Level) ([]byte, error) {
	return c.CompressFunc(src, level)
}

func (c CodecFuncs) Decompress(src []byte) ([]byte, error) {
	return c.DecompressFunc(src)
}
