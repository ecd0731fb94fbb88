package console

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/FitrahHaque/compfile/container"
	"github.com/FitrahHaque/compfile/engine"
)

// Printer writes human readable reports. Colour is applied only when enabled.
type Printer struct {
	w      io.Writer
	colour bool
}

func NewPrinter(w io.Writer, colour bool) *Printer {
	return &Printer{w: w, colour: colour}
}

func (p *Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.colour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (p *Printer) title(s string) {
	p.paint(color.Bold, color.FgCyan).Fprintln(p.w, s)
}

func (p *Printer) field(name, format string, args ...interface{}) {
	fmt.Fprintf(p.w, "  %-20s %s\n", name+":", fmt.Sprintf(format, args...))
}

// Operation announces a file operation, e.g. "Compressing: a -> a.comp".
func (p *Printer) Operation(verb, input, output string) {
	fmt.Fprintf(p.w, "%s %s -> %s\n", p.paint(color.FgCyan).Sprint(verb+":"), input, output)
}

// Stats prints the verbose statistics of one run.
func (p *Printer) Stats(s *engine.Stats) {
	fmt.Fprintln(p.w)
	p.title("Compression Statistics:")
	p.field("Original size", "%d bytes", s.OriginalSize)
	p.field("Compressed size", "%d bytes", s.CompressedSize)
	p.field("Compression ratio", "%.2f:1", s.Ratio())
	savings := p.paint(color.FgGreen)
	if s.Savings() < 0 {
		savings = p.paint(color.FgYellow)
	}
	p.field("Space savings", "%s", savings.Sprintf("%.1f%%", s.Savings()))
	p.field("Processing speed", "%.2f MB/s", s.Speed())
	p.field("Time elapsed", "%.3f seconds", s.Elapsed.Seconds())
}

// Info prints every header field of a .comp file.
func (p *Printer) Info(h *container.Header) {
	p.title("Compressed File Information:")
	p.field("File format version", "%d", h.Version)
	p.field("Original filename", "%s", h.Name())
	p.field("Original size", "%d bytes", h.OriginalSize)
	p.field("Compressed size", "%d bytes", h.CompressedSize)
	p.field("Total file size", "%d bytes", int(h.CompressedSize)+container.HeaderSize)
	if h.OriginalSize > 0 && h.CompressedSize > 0 {
		p.field("Compression ratio", "%.2f:1", 1/h.Ratio())
		p.field("Space savings", "%.1f%%", (1-h.Ratio())*100)
	}
	p.field("Algorithm", "%s", h.Algorithm.Description())
	p.field("Compression level", "%d", h.Level)
	p.field("CRC32 checksum", "0x%08X", h.CRC32)
	p.field("Creation time", "%s", h.Created().Format(time.ANSIC))
}

// TestResult reports the outcome of an integrity test.
func (p *Printer) TestResult(path string, err error) {
	fmt.Fprintf(p.w, "Testing file integrity: %s\n", path)
	if err != nil {
		p.paint(color.FgRed).Fprintf(p.w, "✗ File integrity test failed: %v\n", err)
		return
	}
	p.paint(color.FgGreen).Fprintln(p.w, "✓ File integrity test passed")
}

// Error prints err prefixed the way every failure is reported.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.paint(color.FgRed, color.Bold).Sprint("Error:"), err)
}
