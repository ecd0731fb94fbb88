package engine

import (
	"fmt"
	"time"

	"github.com/FitrahHaque/compfile/compressor"
)

// ProgressFunc receives advisory progress updates. It is called synchronously
// and must return promptly; a panic inside it is logged and ignored.
type ProgressFunc func(percent float64, label string)

// Config selects how a buffer is compressed. The zero value means Huffman at
// LevelNormal with no progress reporting.
type Config struct {
	Algorithm compressor.Algorithm
	Level     compressor.Level
	Progress  ProgressFunc
	// Name is recorded in the header as the original file name.
	Name string
	// Now stamps the header; time.Now when nil.
	Now func() time.Time
}

// FileOptions control the file-level helpers.
type FileOptions struct {
	// Force overwrites an existing output file.
	Force bool
	// Keep leaves the input in place after success.
	Keep bool
}

func (c Config) withDefaults() Config {
	if c.Algorithm == 0 {
		c.Algorithm = compressor.Huffman
	}
	if c.Level == 0 {
		c.Level = compressor.LevelNormal
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Validate checks the algorithm and level after defaults are applied.
func (c Config) Validate() error {
	c = c.withDefaults()
	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: %v", compressor.ErrUnsupportedAlgorithm, c.Algorithm)
	}
	if !c.Level.Valid() {
		return fmt.Errorf("%w: got %d", compressor.ErrInvalidLevel, c.Level)
	}
	return nil
}

func (c Config) report(percent float64, label string) {
	if c.Progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warningf("progress sink failed at %.0f%% (%s): %v", percent, label, r)
		}
	}()
	c.Progress(percent, label)
}
