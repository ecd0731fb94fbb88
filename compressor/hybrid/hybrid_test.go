package hybrid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/compressor/huffman"
	"github.com/FitrahHaque/compfile/compressor/lz77"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"single byte", []byte{'z'}},
		{"text", []byte(strings.Repeat("hybrid pipelines chain two codecs. ", 300))},
		{"runs", append(bytes.Repeat([]byte{'a'}, 5000), bytes.Repeat([]byte{'b'}, 5000)...)},
		{"binary", bytes.Repeat([]byte{0x00, 0x01, 0xFE, 0xFF, 0x7F}, 999)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			compressed, err := Compress(tc.data, compressor.LevelNormal)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			got, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(got, tc.data) {
				t.Fatal("round trip mismatch")
			}
		})
	}
}

// The hybrid payload is exactly Huffman applied to the LZ77 payload.
func TestStageOrder(t *testing.T) {
	data := []byte(strings.Repeat("stage order matters ", 200))
	tokens, err := lz77.Compress(data, compressor.LevelBest)
	if err != nil {
		t.Fatal(err)
	}
	want, err := huffman.Compress(tokens)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Compress(data, compressor.LevelBest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("hybrid output is not huffman(lz77(data))")
	}
}

func TestErrorsPropagate(t *testing.T) {
	if _, err := Compress(nil, compressor.LevelNormal); !errors.Is(err, compressor.ErrEmptyInput) {
		t.Errorf("Compress(nil) = %v, want ErrEmptyInput", err)
	}
	if _, err := Decompress([]byte{1, 2, 3}); !errors.Is(err, compressor.ErrCorruptHeader) {
		t.Errorf("Decompress(short) = %v, want ErrCorruptHeader", err)
	}
	// a valid huffman payload that carries an impossible lz77 stream
	bad, err := huffman.Compress([]byte{0xFF, 0xFF, 0xFF})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decompress(bad); !errors.Is(err, compressor.ErrInvalidMatch) {
		t.Errorf("Decompress(bad lz77) = %v, want ErrInvalidMatch", err)
	}
}
