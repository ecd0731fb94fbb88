package engine

import "time"

// Stats summarises one run for verbose output.
type Stats struct {
	Input, Output string
	// OriginalSize is the uncompressed length; CompressedSize counts the
	// whole .comp file, header included.
	OriginalSize   int
	CompressedSize int
	Elapsed        time.Duration
}

// Ratio is original over compressed, so larger is better.
func (s *Stats) Ratio() float64 {
	if s.CompressedSize == 0 {
		return 0
	}
	return float64(s.OriginalSize) / float64(s.CompressedSize)
}

// Savings is the percentage of space saved; negative when the file grew.
func (s *Stats) Savings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(s.CompressedSize)/float64(s.OriginalSize)) * 100
}

// Speed is throughput over the original size in MiB/s.
func (s *Stats) Speed() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.OriginalSize) / (1024 * 1024) / secs
}
