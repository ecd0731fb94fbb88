// Package huffman implements the static Huffman codec. A payload is the
// 256-entry frequency table (32 bits per entry) followed by the bit-packed
// codes of every input byte, zero padded to a byte boundary. The decoder
// rebuilds the identical tree from the table, so the tree shape itself is
// never stored.
package huffman

import (
	"fmt"
	"math"

	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/compressor/bitstream"
)

// TableSize is the number of bytes the frequency table occupies at the start
// of every payload.
const TableSize = 256 * 4

// Codec exposes the package through compressor.Codec. Huffman has no levels.
var Codec compressor.Codec = compressor.CodecFuncs{
	CompressFunc: func(src []byte, _ compressor.Level) ([]byte, error) {
		return Compress(src)
	},
	DecompressFunc: Decompress,
}

// Compress encodes src. The result is always at least TableSize bytes, so
// short inputs grow.
func Compress(content []byte) ([]byte, error) {
	if len(content) == 0 {
		return nil, compressor.ErrEmptyInput
	}
	if uint64(len(content)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceed the 32-bit frequency fields", compressor.ErrAllocationFailure, len(content))
	}
	var symbolFreq [256]uint64
	for _, c := range content {
		symbolFreq[c]++
	}
	tree, err := buildTree(&symbolFreq)
	if err != nil {
		return nil, err
	}
	symbolEnc, err := getSymbolEncoding(tree)
	if err != nil {
		return nil, err
	}

	bs := bitstream.New(len(content)/2 + TableSize)
	for _, freq := range symbolFreq {
		bs.WriteBits(uint32(freq), 32)
	}
	for _, symbol := range content {
		writeCode(bs, symbolEnc[symbol])
	}
	bs.FlushPad()
	return bs.Bytes(), nil
}

func writeCode(bs *bitstream.BitStream, c code) {
	if c.length > 32 {
		bs.WriteBits(uint32(c.bits>>32), c.length-32)
		bs.WriteBits(uint32(c.bits), 32)
		return
	}
	bs.WriteBits(uint32(c.bits), c.length)
}

// Decompress reverses Compress.
func Decompress(content []byte) ([]byte, error) {
	if len(content) < TableSize {
		return nil, fmt.Errorf("%w: huffman payload is %d bytes, the frequency table alone needs %d",
			compressor.ErrCorruptHeader, len(content), TableSize)
	}
	bs := bitstream.FromBytes(content)
	var symbolFreq [256]uint64
	var total uint64
	for i := range symbolFreq {
		symbolFreq[i] = uint64(bs.ReadBits(32))
		total += symbolFreq[i]
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: frequencies sum to zero", compressor.ErrInvalidFrequencyTable)
	}
	// every symbol was written with at least one bit
	if total > uint64(bs.Remaining()) {
		return nil, fmt.Errorf("%w: %d symbols cannot fit in %d bits",
			compressor.ErrInvalidFrequencyTable, total, bs.Remaining())
	}

	root, err := buildTree(&symbolFreq)
	if err != nil {
		return nil, err
	}
	output := make([]byte, 0, total)
	current := root
	for uint64(len(output)) < total {
		switch node := current.(type) {
		case *huffmanLeaf:
			output = append(output, node.symbol)
			current = root
		case *huffmanNode:
			if node.right == nil {
				if leaf, ok := node.left.(*huffmanLeaf); ok {
					output = append(output, leaf.symbol)
					current = root
					continue
				}
			}
			if bs.Remaining() == 0 {
				return nil, fmt.Errorf("%w: stream ended after %d of %d symbols",
					compressor.ErrInvalidEncoding, len(output), total)
			}
			next := node.left
			if bs.ReadBits(1) == 1 {
				next = node.right
			}
			if next == nil {
				return nil, fmt.Errorf("%w: bit path leads to a missing child", compressor.ErrInvalidEncoding)
			}
			current = next
		}
	}
	return output, nil
}
