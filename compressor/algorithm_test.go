package compressor

import (
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
		err  error
	}{
		{"huffman", Huffman, nil},
		{"LZ77", LZ77, nil},
		{" hybrid ", Hybrid, nil},
		{"deflate", 0, ErrUnsupportedAlgorithm},
		{"", 0, ErrUnsupportedAlgorithm},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tc.in)
			if !errors.Is(err, tc.err) {
				t.Fatalf("ParseAlgorithm(%q) error = %v, want %v", tc.in, err, tc.err)
			}
			if got != tc.want {
				t.Errorf("ParseAlgorithm(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAlgorithmStringRoundTrip(t *testing.T) {
	for _, a := range Algorithms {
		got, err := ParseAlgorithm(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a.String(), got, err)
		}
		if !a.Valid() {
			t.Errorf("%v reported invalid", a)
		}
	}
	if Algorithm(0).Valid() || Algorithm(4).Valid() {
		t.Error("out of range algorithm reported valid")
	}
	if Algorithm(7).Description() != "Unknown" {
		t.Errorf("Description() = %q", Algorithm(7).Description())
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"1", "5", "9"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	for _, s := range []string{"0", "10", "-1", "fast"} {
		if _, err := ParseLevel(s); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidLevel", s, err)
		}
	}
}
