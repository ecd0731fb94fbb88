// Package benchmark measures the three .comp algorithms against common
// reference codecs on the same input.
package benchmark

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/op/go-logging"

	"github.com/FitrahHaque/compfile/compressor"
)

var log = logging.MustGetLogger("benchmark")

// ErrRoundTrip means a codec did not reproduce its input.
var ErrRoundTrip = errors.New("round trip mismatch")

// Result is the measurement of one codec.
type Result struct {
	Name           string
	Reference      bool
	OriginalSize   int
	CompressedSize int
	Compress       time.Duration
	Decompress     time.Duration
}

// Ratio is original over compressed.
func (r Result) Ratio() float64 {
	if r.CompressedSize == 0 {
		return 0
	}
	return float64(r.OriginalSize) / float64(r.CompressedSize)
}

// Run compresses and restores data with every entry at the given level. A
// codec error or mismatch aborts the run.
func Run(data []byte, level compressor.Level, entries []Entry) ([]Result, error) {
	if len(data) == 0 {
		return nil, compressor.ErrEmptyInput
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: got %d", compressor.ErrInvalidLevel, level)
	}
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		r, err := measure(data, level, e)
		if err != nil {
			return results, fmt.Errorf("%s: %w", e.Name, err)
		}
		log.Debugf("%s: %d -> %d bytes in %v / %v", r.Name, r.OriginalSize, r.CompressedSize, r.Compress, r.Decompress)
		results = append(results, r)
	}
	return results, nil
}

func measure(data []byte, level compressor.Level, e Entry) (Result, error) {
	start := time.Now()
	packed, err := e.Codec.Compress(data, level)
	if err != nil {
		return Result{}, err
	}
	compressTime := time.Since(start)

	start = time.Now()
	restored, err := e.Codec.Decompress(packed)
	if err != nil {
		return Result{}, err
	}
	decompressTime := time.Since(start)

	if !bytes.Equal(restored, data) {
		return Result{}, ErrRoundTrip
	}
	return Result{
		Name:           e.Name,
		Reference:      e.Reference,
		OriginalSize:   len(data),
		CompressedSize: len(packed),
		Compress:       compressTime,
		Decompress:     decompressTime,
	}, nil
}

// Report writes results as a table. The best ratio is highlighted when
// colour is enabled.
func Report(w io.Writer, results []Result, colour bool) {
	best := -1
	for i, r := range results {
		if best < 0 || r.Ratio() > results[best].Ratio() {
			best = i
		}
	}
	header := color.New(color.Bold)
	highlight := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)
	for _, c := range []*color.Color{header, highlight, dim} {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	header.Fprintf(w, "%-8s %12s %12s %8s %12s %12s\n", "codec", "original", "compressed", "ratio", "compress", "decompress")
	for i, r := range results {
		name := fmt.Sprintf("%-8s", r.Name)
		switch {
		case i == best:
			name = highlight.Sprint(name)
		case r.Reference:
			name = dim.Sprint(name)
		}
		fmt.Fprintf(w, "%s %12d %12d %8.2f %12s %12s\n", name, r.OriginalSize, r.CompressedSize, r.Ratio(),
			r.Compress.Round(time.Microsecond), r.Decompress.Round(time.Microsecond))
	}
}
