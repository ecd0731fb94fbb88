package benchmark

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/compressor/huffman"
	"github.com/FitrahHaque/compfile/compressor/hybrid"
	"github.com/FitrahHaque/compfile/compressor/lz77"
)

// Entry is one codec taking part in a run.
type Entry struct {
	Name string
	// Reference marks third-party codecs measured for comparison.
	Reference bool
	Codec     compressor.Codec
}

// Entries lists our algorithms first, then the reference codecs.
var Entries = []Entry{
	{Name: compressor.Huffman.String(), Codec: huffman.Codec},
	{Name: compressor.LZ77.String(), Codec: lz77.Codec},
	{Name: compressor.Hybrid.String(), Codec: hybrid.Codec},
	{Name: "lz4", Reference: true, Codec: compressor.CodecFuncs{CompressFunc: lz4Compress, DecompressFunc: lz4Decompress}},
	{Name: "snappy", Reference: true, Codec: compressor.CodecFuncs{CompressFunc: snappyCompress, DecompressFunc: snappyDecompress}},
	{Name: "zstd", Reference: true, Codec: compressor.CodecFuncs{CompressFunc: zstdCompress, DecompressFunc: zstdDecompress}},
	{Name: "brotli", Reference: true, Codec: compressor.CodecFuncs{CompressFunc: brotliCompress, DecompressFunc: brotliDecompress}},
}

// lz4Levels is indexed by level-1; level 1 selects the fast compressor.
var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

func lz4Compress(src []byte, level compressor.Level) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if err := zw.Apply(lz4.CompressionLevelOption(lz4Levels[level-1])); err != nil {
		return nil, err
	}
	if _, err := zw.Write(src); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lz4Decompress(src []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
}

func snappyCompress(src []byte, _ compressor.Level) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

func snappyDecompress(src []byte) ([]byte, error) {
	return snappy.Decode(nil, src)
}

func zstdCompress(src []byte, level compressor.Level) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(int(level))))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(src, nil), nil
}

func zstdDecompress(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, nil)
}

func brotliCompress(src []byte, level compressor.Level) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, int(level))
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliDecompress(src []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(src)))
}
