package compressor

import (
	"fmt"
	"strings"
)

// Stage is one named codec in a Pipeline.
type Stage struct {
	Name  string
	Codec Codec
}

// Pipeline applies its stages in order to compress and in reverse order to
// decompress. A failing stage aborts the run; its error is wrapped, not
// replaced.
type Pipeline []Stage

// StageHook is called just before stage i runs.
type StageHook func(i int, stage Stage)

func (p Pipeline) String() string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Name
	}
	return strings.Join(names, "+")
}

func (p Pipeline) Compress(src []byte, level Level) ([]byte, error) {
	return p.CompressWith(src, level, nil)
}

func (p Pipeline) Decompress(src []byte) ([]byte, error) {
	return p.DecompressWith(src, nil)
}

func (p Pipeline) CompressWith(src []byte, level Level, hook StageHook) ([]byte, error) {
	content := src
	for i, stage := range p {
		if hook != nil {
			hook(i, stage)
		}
		out, err := stage.Codec.Compress(content, level)
		if err != nil {
			return nil, p.wrap(stage, err)
		}
		content = out
	}
	return content, nil
}

func (p Pipeline) DecompressWith(src []byte, hook StageHook) ([]byte, error) {
	content := src
	for i := len(p) - 1; i >= 0; i-- {
		stage := p[i]
		if hook != nil {
			hook(len(p)-1-i, stage)
		}
		out, err := stage.Codec.Decompress(content)
		if err != nil {
			return nil, p.wrap(stage, err)
		}
		content = out
	}
	return content, nil
}

func (p Pipeline) wrap(stage Stage, err error) error {
	if len(p) == 1 {
		return err
	}
	return fmt.Errorf("%s stage: %w", stage.Name, err)
}
