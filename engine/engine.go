// Package engine drives a compression end to end: it dispatches to the
// selected codec pipeline, checksums the original bytes and frames the
// result in a .comp container. Decompression runs the inverse pipeline and
// returns bytes only after their size and CRC32 match the header.
package engine

import (
	"bytes"
	"fmt"
	"math"

	"github.com/op/go-logging"

	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/compressor/checksum"
	"github.com/FitrahHaque/compfile/compressor/huffman"
	"github.com/FitrahHaque/compfile/compressor/hybrid"
	"github.com/FitrahHaque/compfile/compressor/lz77"
	"github.com/FitrahHaque/compfile/container"
)

var log = logging.MustGetLogger("engine")

var pipelines = map[compressor.Algorithm]compressor.Pipeline{
	compressor.Huffman: {{Name: "Huffman", Codec: huffman.Codec}},
	compressor.LZ77:    {{Name: "LZ77", Codec: lz77.Codec}},
	compressor.Hybrid:  hybrid.Pipeline,
}

// Compress compresses input and returns the header describing it together
// with the payload. Use Marshal to produce the file image.
func Compress(input []byte, cfg Config) (*container.Header, []byte, error) {
	cfg = cfg.withDefaults()
	h, payload, err := compress(input, cfg)
	if err != nil {
		return nil, nil, err
	}
	cfg.report(100, "Compression complete")
	return h, payload, nil
}

func compress(input []byte, cfg Config) (*container.Header, []byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if len(input) == 0 {
		return nil, nil, compressor.ErrEmptyInput
	}
	if uint64(len(input)) > math.MaxUint32 {
		return nil, nil, fmt.Errorf("%w: input of %d bytes exceeds the 32-bit size field", compressor.ErrAllocationFailure, len(input))
	}
	cfg.report(10, "Reading input file")

	pipeline := pipelines[cfg.Algorithm]
	log.Debugf("compressing %d bytes with %v at level %d", len(input), pipeline, cfg.Level)
	payload, err := pipeline.CompressWith(input, cfg.Level, func(i int, stage compressor.Stage) {
		if i == 0 {
			cfg.report(20, stage.Name+" compression")
		} else {
			cfg.report(50, stage.Name+" post-processing")
		}
	})
	if err != nil {
		log.Errorf("%v compression failed: %v", cfg.Algorithm, err)
		return nil, nil, fmt.Errorf("%v compression: %w", cfg.Algorithm, err)
	}

	cfg.report(70, "Calculating checksum")
	h := container.NewHeader(cfg.Algorithm, cfg.Level, cfg.Name, cfg.Now())
	h.CRC32 = checksum.CRC32(input)
	if err := h.SetSizes(len(input), len(payload)); err != nil {
		return nil, nil, err
	}
	log.Debugf("compressed %d -> %d bytes, crc32 0x%08X", h.OriginalSize, h.CompressedSize, h.CRC32)
	return h, payload, nil
}

// Decompress parses a .comp image, decodes the payload and verifies it. On
// any failure no output is returned; the header is returned whenever it
// could be parsed.
func Decompress(data []byte, cfg Config) (*container.Header, []byte, error) {
	h, output, err := decompress(data, cfg)
	if err != nil {
		return h, nil, err
	}
	cfg.report(100, "Decompression complete")
	return h, output, nil
}

func decompress(data []byte, cfg Config) (*container.Header, []byte, error) {
	h, payload, err := container.Read(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	cfg.report(10, "Reading compressed data")

	pipeline, ok := pipelines[h.Algorithm]
	if !ok {
		return h, nil, fmt.Errorf("%w: id %d", compressor.ErrUnsupportedAlgorithm, uint32(h.Algorithm))
	}
	log.Debugf("decompressing %d bytes with %v", len(payload), pipeline)
	output, err := pipeline.DecompressWith(payload, func(i int, stage compressor.Stage) {
		cfg.report(30+30*float64(i), stage.Name+" decompression")
	})
	if err != nil {
		log.Errorf("%v decompression failed: %v", h.Algorithm, err)
		return h, nil, fmt.Errorf("%v decompression: %w", h.Algorithm, err)
	}

	cfg.report(80, "Verifying integrity")
	if err := container.Check(output, h); err != nil {
		log.Errorf("verification failed: %v", err)
		return h, nil, err
	}
	return h, output, nil
}

// Inspect returns the header of a .comp image without decoding the payload.
func Inspect(data []byte) (*container.Header, error) {
	return container.ReadHeader(bytes.NewReader(data))
}

// Test decodes and verifies a .comp image and discards the output.
func Test(data []byte, cfg Config) (*container.Header, error) {
	h, _, err := Decompress(data, cfg)
	return h, err
}

// Marshal frames a header and payload as a .comp image.
func Marshal(h *container.Header, payload []byte) ([]byte, error) {
	var b bytes.Buffer
	b.Grow(container.HeaderSize + len(payload))
	if err := container.Write(&b, h, payload); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
