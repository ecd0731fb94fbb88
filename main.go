package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/FitrahHaque/compfile/benchmark"
	"github.com/FitrahHaque/compfile/compressor"
	"github.com/FitrahHaque/compfile/console"
	"github.com/FitrahHaque/compfile/container"
	"github.com/FitrahHaque/compfile/engine"
)

const (
	progName = "compfile"
	version  = "1.0.0"
)

var log = logging.MustGetLogger("main")

func usageMessage() string {
	return `Usage: ` + progName + ` [OPTIONS] INPUT_FILE [OUTPUT_FILE]

Compress and decompress files in the .comp format.

Options:
  -c, --compress     Compress the input file (default)
  -d, --decompress   Decompress the input file
  -a, --algorithm    Compression algorithm:
                       huffman  - Huffman coding (default)
                       lz77     - LZ77 compression
                       hybrid   - LZ77 + Huffman
  -l, --level        Compression level (1-9, default: 5)
                       1 = fastest, 9 = best compression
  -v, --verbose      Verbose output with progress and statistics
  -f, --force        Force overwrite output file
  -k, --keep         Keep original file after compression/decompression
  -t, --test         Test compressed file integrity
  -i, --info         Display file information
  -b, --benchmark    Compare all algorithms and reference codecs on INPUT_FILE
      --debug        Debug logging
  -h, --help         Display this help message
      --version      Display version information

INPUT_FILE may be a comma separated list; OUTPUT_FILE is then not allowed.

Examples:
  ` + progName + ` file.txt                    # Compress using Huffman
  ` + progName + ` -a lz77 -l 9 file.txt       # Best LZ77 compression
  ` + progName + ` -d file.txt.comp            # Decompress file
  ` + progName + ` -i file.txt.comp            # Show file info
  ` + progName + ` -t file.txt.comp            # Test file integrity
`
}

type options struct {
	compress, decompress bool
	algorithm, level     string
	verbose, debug       bool
	force, keep          bool
	test, info, bench    bool
	help, version        bool
	inputs               []string
	output               string
}

type cli struct {
	stdout, stderr io.Writer
	// colour applies to stdout; bars are drawn on stderr only when it is a terminal.
	colour, bars bool
	leveled      logging.LeveledBackend
}

func startLogging(w io.Writer) logging.LeveledBackend {
	backend := logging.NewLogBackend(w, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:7s}%{color:reset} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
	return leveled
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	fs.BoolVar(&o.compress, "compress", false, "")
	fs.BoolVar(&o.compress, "c", false, "")
	fs.BoolVar(&o.decompress, "decompress", false, "")
	fs.BoolVar(&o.decompress, "d", false, "")
	fs.StringVar(&o.algorithm, "algorithm", "huffman", "")
	fs.StringVar(&o.algorithm, "a", "huffman", "")
	fs.StringVar(&o.level, "level", "5", "")
	fs.StringVar(&o.level, "l", "5", "")
	fs.BoolVar(&o.verbose, "verbose", false, "")
	fs.BoolVar(&o.verbose, "v", false, "")
	fs.BoolVar(&o.force, "force", false, "")
	fs.BoolVar(&o.force, "f", false, "")
	fs.BoolVar(&o.keep, "keep", false, "")
	fs.BoolVar(&o.keep, "k", false, "")
	fs.BoolVar(&o.test, "test", false, "")
	fs.BoolVar(&o.test, "t", false, "")
	fs.BoolVar(&o.info, "info", false, "")
	fs.BoolVar(&o.info, "i", false, "")
	fs.BoolVar(&o.bench, "benchmark", false, "")
	fs.BoolVar(&o.bench, "b", false, "")
	fs.BoolVar(&o.debug, "debug", false, "")
	fs.BoolVar(&o.help, "help", false, "")
	fs.BoolVar(&o.help, "h", false, "")
	fs.BoolVar(&o.version, "version", false, "")
	return fs
}

// parseArgs accepts flags before, between and after the positional
// arguments.
func parseArgs(args []string) (*options, error) {
	o := new(options)
	fs := newFlagSet(o)
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
	if o.compress && o.decompress {
		return nil, errors.New("specify either --compress or --decompress")
	}
	if len(positional) > 2 {
		return nil, fmt.Errorf("unexpected argument %q", positional[2])
	}
	if len(positional) > 0 {
		for _, f := range strings.Split(positional[0], ",") {
			if f = strings.TrimSpace(f); f != "" {
				o.inputs = append(o.inputs, f)
			}
		}
	}
	if len(positional) == 2 {
		if len(o.inputs) > 1 {
			return nil, errors.New("OUTPUT_FILE cannot be combined with several inputs")
		}
		o.output = positional[1]
	}
	return o, nil
}

func (c *cli) run(args []string) int {
	if len(args) == 0 {
		io.WriteString(c.stderr, usageMessage())
		return 1
	}
	o, err := parseArgs(args)
	if err != nil {
		return c.usageError(err)
	}
	switch {
	case o.help:
		io.WriteString(c.stdout, usageMessage())
		return 0
	case o.version:
		fmt.Fprintf(c.stdout, "%s v%s (format version %d)\n", progName, version, container.Version)
		fmt.Fprintln(c.stdout, "Algorithms: Huffman coding, LZ77, Hybrid (LZ77+Huffman)")
		return 0
	}

	switch {
	case o.debug:
		c.leveled.SetLevel(logging.DEBUG, "")
	case o.verbose:
		c.leveled.SetLevel(logging.INFO, "")
	}

	if len(o.inputs) == 0 {
		return c.usageError(errors.New("input file required"))
	}
	algorithm, err := compressor.ParseAlgorithm(o.algorithm)
	if err != nil {
		return c.fail(err)
	}
	level, err := compressor.ParseLevel(o.level)
	if err != nil {
		return c.fail(err)
	}
	cfg := engine.Config{Algorithm: algorithm, Level: level}
	opts := engine.FileOptions{Force: o.force, Keep: o.keep}
	printer := console.NewPrinter(c.stdout, c.colour)

	switch {
	case o.info:
		return c.each(o.inputs, func(path string) error {
			h, err := engine.InfoFile(path)
			if err != nil {
				return err
			}
			printer.Info(h)
			return nil
		})
	case o.test:
		return c.each(o.inputs, func(path string) error {
			_, err := engine.TestFile(path, cfg)
			printer.TestResult(path, err)
			return err
		})
	case o.bench:
		return c.each(o.inputs, func(path string) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			results, err := benchmark.Run(data, level, benchmark.Entries)
			benchmark.Report(c.stdout, results, c.colour)
			return err
		})
	}

	verb := "Compressing"
	if o.decompress {
		verb = "Decompressing"
	}
	if len(o.inputs) > 1 {
		var stats []*engine.Stats
		if o.decompress {
			stats, err = engine.DecompressFiles(o.inputs, cfg, opts)
		} else {
			stats, err = engine.CompressFiles(o.inputs, cfg, opts)
		}
		if o.verbose {
			for _, s := range stats {
				printer.Operation(verb, s.Input, s.Output)
				printer.Stats(s)
			}
		}
		if err != nil {
			return c.fail(err)
		}
		return 0
	}

	input, output := o.inputs[0], o.output
	if output == "" {
		output = engine.OutputName(input, !o.decompress)
	}
	if o.verbose {
		printer.Operation(verb, input, output)
		if !o.decompress {
			fmt.Fprintf(c.stdout, "Algorithm: %s (level %d)\n", algorithm.Description(), level)
		}
	}
	var bar *console.ProgressBar
	if o.verbose && c.bars {
		bar = console.NewProgressBar(c.stderr)
		cfg.Progress = bar.Update
	}
	var stats *engine.Stats
	if o.decompress {
		_, stats, err = engine.DecompressFile(input, output, cfg, opts)
	} else {
		stats, err = engine.CompressFile(input, output, cfg, opts)
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return c.fail(err)
	}
	if o.verbose {
		printer.Stats(stats)
	}
	return 0
}

// each applies fn to every input and reports failures without stopping.
func (c *cli) each(inputs []string, fn func(string) error) int {
	status := 0
	for _, input := range inputs {
		if err := fn(input); err != nil {
			log.Debugf("%s failed: %v", input, err)
			console.NewPrinter(c.stderr, c.colour).Error(err)
			status = 1
		}
	}
	return status
}

func (c *cli) fail(err error) int {
	console.NewPrinter(c.stderr, c.colour).Error(err)
	return 1
}

func (c *cli) usageError(err error) int {
	fmt.Fprintf(c.stderr, "%s: %v\n", progName, err)
	fmt.Fprintf(c.stderr, "Try '%s --help' for more information.\n", progName)
	return 1
}

func main() {
	c := &cli{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		colour:  console.IsTerminal(os.Stdout),
		bars:    console.IsTerminal(os.Stderr),
		leveled: startLogging(os.Stderr),
	}
	os.Exit(c.run(os.Args[1:]))
}
