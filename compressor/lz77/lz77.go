// Package lz77 implements a greedy sliding-window compressor. Matches are
// found through a hash chain over 3-byte prefixes that is built fresh for
// every call, so concurrent calls never share state.
//
// The payload is a sequence of tokens followed by zero padding to a byte
// boundary:
//
//	literal: 0 + 8-bit byte
//	match:   1 + 15-bit distance + 8-bit (length - MinMatchLength)
package lz77

import (
	"fmt"
	"math"
	"slices"

	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/compressor/bitstream"
)

const (
	WindowSize     = 32768
	MaxDistance    = 1<<distanceBits - 1
	MinMatchLength = 3
	MaxMatchLength = MinMatchLength + 1<<lengthBits - 1

	distanceBits = 15
	lengthBits   = 8

	literalTokenBits = 1 + 8
	matchTokenBits   = 1 + distanceBits + lengthBits
)

type TokenKind int

const (
	LiteralToken TokenKind = iota
	MatchToken
)

// Token is one unit of the compressed stream. Length may exceed Distance, in
// which case the copy overlaps the bytes it produces.
type Token struct {
	Kind     TokenKind
	Value    byte
	Distance int
	Length   int
}

// Codec exposes the package through compressor.Codec.
var Codec compressor.Codec = compressor.CodecFuncs{
	CompressFunc:   Compress,
	DecompressFunc: Decompress,
}

// Compress encodes content. Higher levels search longer chains and, above
// LevelFast, also index the positions covered by each match.
func Compress(content []byte, level compressor.Level) ([]byte, error) {
	if len(content) == 0 {
		return nil, compressor.ErrEmptyInput
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: got %d", compressor.ErrInvalidLevel, level)
	}
	if len(content) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d bytes exceed the match index", compressor.ErrAllocationFailure, len(content))
	}
	bs := bitstream.New(len(content) + len(content)/8 + 1024)
	tokenise(content, level, func(token Token) {
		if token.Kind == LiteralToken {
			bs.WriteBits(0, 1)
			bs.WriteBits(uint32(token.Value), 8)
			return
		}
		bs.WriteBits(1, 1)
		bs.WriteBits(uint32(token.Distance), distanceBits)
		bs.WriteBits(uint32(token.Length-MinMatchLength), lengthBits)
	})
	bs.FlushPad()
	return bs.Bytes(), nil
}

// tokenise runs the greedy parse and hands every token to emit in order.
func tokenise(content []byte, level compressor.Level, emit func(Token)) {
	chain := newHashChain(len(content), maxChainByLevel[level])
	for pos := 0; pos < len(content); {
		if pos+MinMatchLength <= len(content) {
			chain.insert(content, pos)
		}
		distance, length := chain.findLongestMatch(content, pos)
		if length < MinMatchLength {
			emit(Token{Kind: LiteralToken, Value: content[pos]})
			pos++
			continue
		}
		emit(Token{Kind: MatchToken, Distance: distance, Length: length})
		if level > compressor.LevelFast {
			for i := pos + 1; i < pos+length && i+MinMatchLength <= len(content); i++ {
				chain.insert(content, i)
			}
		}
		pos += length
	}
}

// Decompress reverses Compress.
func Decompress(content []byte) ([]byte, error) {
	if len(content) == 0 {
		return nil, compressor.ErrEmptyInput
	}
	bs := bitstream.FromBytes(content)
	output := make([]byte, 0, 2*len(content))
	// anything shorter than a literal token is padding
	for bs.Remaining() >= literalTokenBits {
		if bs.ReadBits(1) == 0 {
			output = append(output, byte(bs.ReadBits(8)))
			continue
		}
		if bs.Remaining() < matchTokenBits-1 {
			return nil, fmt.Errorf("%w: match token cut short at output offset %d", compressor.ErrInvalidMatch, len(output))
		}
		distance := int(bs.ReadBits(distanceBits))
		length := int(bs.ReadBits(lengthBits)) + MinMatchLength
		if distance == 0 || distance > len(output) || length > MaxMatchLength {
			return nil, fmt.Errorf("%w: distance %d, length %d with %d bytes decoded",
				compressor.ErrInvalidMatch, distance, length, len(output))
		}
		start := len(output) - distance
		for i := 0; i < length; i++ {
			output = append(output, output[start+i])
		}
	}
	return slices.Clip(output), nil
}
