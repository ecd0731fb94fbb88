package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/container"
)

// Extension is appended to compressed files.
const Extension = ".comp"

// OutputName derives the default output path: "x" compresses to "x.comp",
// "x.comp" decompresses to "x" and anything else to "x.decompressed".
func OutputName(input string, compress bool) string {
	if compress {
		return input + Extension
	}
	if len(input) > len(Extension) && strings.HasSuffix(input, Extension) {
		return strings.TrimSuffix(input, Extension)
	}
	return input + ".decompressed"
}

func checkOutput(output string, opts FileOptions) error {
	if opts.Force {
		return nil
	}
	if _, err := os.Stat(output); err == nil {
		return fmt.Errorf("%w: %s", compressor.ErrOutputExists, output)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check output: %w", err)
	}
	return nil
}

func removeInput(input string, opts FileOptions) {
	if opts.Keep {
		return
	}
	if err := os.Remove(input); err != nil {
		log.Warningf("could not remove original file %s: %v", input, err)
	}
}

// CompressFile compresses input into output. An empty output selects
// OutputName(input, true). cfg.Name defaults to the input's base name.
func CompressFile(input, output string, cfg Config, opts FileOptions) (*Stats, error) {
	cfg = cfg.withDefaults()
	if output == "" {
		output = OutputName(input, true)
	}
	if err := checkOutput(output, opts); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = filepath.Base(input)
	}

	start := time.Now()
	h, payload, err := compress(content, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	elapsed := time.Since(start)

	cfg.report(80, "Writing output file")
	image, err := Marshal(h, payload)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(output, image, 0644); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	cfg.report(100, "Compression complete")
	log.Infof("compressed %s -> %s (%d -> %d bytes)", input, output, len(content), len(image))

	removeInput(input, opts)
	return &Stats{
		Input:          input,
		Output:         output,
		OriginalSize:   len(content),
		CompressedSize: len(image),
		Elapsed:        elapsed,
	}, nil
}

// DecompressFile restores input into output. An empty output selects
// OutputName(input, false). Nothing is written unless verification passes.
func DecompressFile(input, output string, cfg Config, opts FileOptions) (*container.Header, *Stats, error) {
	if output == "" {
		output = OutputName(input, false)
	}
	if err := checkOutput(output, opts); err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

	start := time.Now()
	h, content, err := decompress(data, cfg)
	if err != nil {
		return h, nil, fmt.Errorf("%s: %w", input, err)
	}
	elapsed := time.Since(start)

	cfg.report(90, "Writing output file")
	if err := os.WriteFile(output, content, 0644); err != nil {
		return h, nil, fmt.Errorf("write output: %w", err)
	}
	cfg.report(100, "Decompression complete")
	log.Infof("decompressed %s -> %s (%d bytes)", input, output, len(content))

	removeInput(input, opts)
	return h, &Stats{
		Input:          input,
		Output:         output,
		OriginalSize:   len(content),
		CompressedSize: len(data),
		Elapsed:        elapsed,
	}, nil
}

// InfoFile reads only the header of a .comp file.
func InfoFile(path string) (*container.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return container.ReadHeader(f)
}

// TestFile fully decodes and verifies a .comp file without writing anything.
func TestFile(path string, cfg Config) (*container.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Test(data, cfg)
}

// CompressFiles compresses each input to its default output name. Every
// file is attempted; failures are collected into one error.
func CompressFiles(inputs []string, cfg Config, opts FileOptions) ([]*Stats, error) {
	var result *multierror.Error
	var stats []*Stats
	for _, input := range inputs {
		s, err := CompressFile(input, "", cfg, opts)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		stats = append(stats, s)
	}
	return stats, result.ErrorOrNil()
}

// DecompressFiles is the counterpart of CompressFiles.
func DecompressFiles(inputs []string, cfg Config, opts FileOptions) ([]*Stats, error) {
	var result *multierror.Error
	var stats []*Stats
	for _, input := range inputs {
		_, s, err := DecompressFile(input, "", cfg, opts)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		stats = append(stats, s)
	}
	return stats, result.ErrorOrNil()
}
