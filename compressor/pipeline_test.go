package compressor

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// tagCodec appends its tag on compress and strips it on decompress.
func tagCodec(tag byte) Codec {
	return CodecFuncs{
		CompressFunc: func(src []byte, _ Level) ([]byte, error) {
			return append(append([]byte{}, src...), tag), nil
		},
		DecompressFunc: func(src []byte) ([]byte, error) {
			if len(src) == 0 || src[len(src)-1] != tag {
				return nil, ErrCorruptHeader
			}
			return src[:len(src)-1], nil
		},
	}
}

func TestPipelineOrder(t *testing.T) {
	p := Pipeline{{Name: "A", Codec: tagCodec('a')}, {Name: "B", Codec: tagCodec('b')}}
	var order []string
	out, err := p.CompressWith([]byte("x"), LevelNormal, func(i int, s Stage) { order = append(order, s.Name) })
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "xab" {
		t.Fatalf("compressed = %q, want xab", out)
	}
	back, err := p.DecompressWith(out, func(i int, s Stage) { order = append(order, s.Name) })
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, []byte("x")) {
		t.Fatalf("decompressed = %q", back)
	}
	if got := strings.Join(order, ""); got != "ABBA" {
		t.Errorf("stage order = %q, want ABBA", got)
	}
	if p.String() != "A+B" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestPipelineErrorsWrapped(t *testing.T) {
	p := Pipeline{{Name: "A", Codec: tagCodec('a')}, {Name: "B", Codec: tagCodec('b')}}
	_, err := p.Decompress([]byte("xa"))
	if !errors.Is(err, ErrCorruptHeader) {
		t.Fatalf("err = %v, want wrapped ErrCorruptHeader", err)
	}
	single := Pipeline{{Name: "A", Codec: tagCodec('a')}}
	if _, err := single.Decompress(nil); err != ErrCorruptHeader {
		t.Fatalf("single stage err = %v, want it unwrapped", err)
	}
}
