// Package hybrid chains the two codecs: LZ77 removes repeated runs and
// Huffman then entropy codes the LZ77 token stream.
package hybrid

import (
	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/compressor/huffman"
	"github.com/FitrahHaque/compfile/compressor/lz77"
)

// Pipeline lists the stages in compression order.
var Pipeline = compressor.Pipeline{
	{Name: "LZ77", Codec: lz77.Codec},
	{Name: "Huffman", Codec: huffman.Codec},
}

// Codec exposes the package through compressor.Codec.
var Codec compressor.Codec = Pipeline

func Compress(content []byte, level compressor.Level) ([]byte, error) {
	return Pipeline.Compress(content, level)
}

func Decompress(content []byte) ([]byte, error) {
	return Pipeline.Decompress(content)
}
