// Package console renders engine results for a terminal: a progress bar fed
// by the engine's progress sink and coloured summaries of runs and headers.
package console

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
)

const barTemplate = `{{string . "label" | printf "%-28s"}} {{bar . "[" "█" "█" "░" "]"}} {{percent . "%.1f%%"}}`

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ProgressBar draws engine progress on a 0..100 scale.
type ProgressBar struct {
	bar     *pb.ProgressBar
	started bool
}

func NewProgressBar(w io.Writer) *ProgressBar {
	bar := pb.New(100)
	bar.SetTemplateString(barTemplate)
	bar.SetWriter(w)
	return &ProgressBar{bar: bar}
}

// Update has the signature of engine.ProgressFunc.
func (p *ProgressBar) Update(percent float64, label string) {
	if !p.started {
		p.bar.Start()
		p.started = true
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	p.bar.Set("label", label)
	p.bar.SetCurrent(int64(percent))
}

// Finish stops the bar. It is safe to call when Update never ran.
func (p *ProgressBar) Finish() {
	if p.started {
		p.bar.Finish()
		p.started = false
	}
}

// Current returns the last percentage drawn.
func (p *ProgressBar) Current() int64 {
	return p.bar.Current()
}
