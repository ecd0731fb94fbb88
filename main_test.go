package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	startLogging(io.Discard)
	os.Exit(m.Run())
}

func newTestCLI() (*cli, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &cli{
		stdout:  &stdout,
		stderr:  &stderr,
		leveled: startLogging(io.Discard),
	}, &stdout, &stderr
}

func TestParseArgs(t *testing.T) {
	o, err := parseArgs([]string{"a.txt", "-a", "lz77", "--level", "9", "out.comp", "-k"})
	if err != nil {
		t.Fatal(err)
	}
	if o.algorithm != "lz77" || o.level != "9" || !o.keep {
		t.Errorf("options = %+v", o)
	}
	if len(o.inputs) != 1 || o.inputs[0] != "a.txt" || o.output != "out.comp" {
		t.Errorf("positionals = %q, %q", o.inputs, o.output)
	}

	o, err = parseArgs([]string{"-d", "a.comp, b.comp"})
	if err != nil {
		t.Fatal(err)
	}
	if !o.decompress || len(o.inputs) != 2 || o.inputs[1] != "b.comp" {
		t.Errorf("options = %+v", o)
	}

	for _, bad := range [][]string{
		{"-c", "-d", "x"},
		{"a,b", "out"},
		{"a", "b", "c"},
		{"--unknown", "a"},
	} {
		if _, err := parseArgs(bad); err == nil {
			t.Errorf("parseArgs(%q) accepted", bad)
		}
	}
}

func TestRunRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	content := []byte(strings.Repeat("command line round trip\n", 100))
	if err := os.WriteFile(input, content, 0644); err != nil {
		t.Fatal(err)
	}

	c, stdout, stderr := newTestCLI()
	if code := c.run([]string{"-a", "hybrid", "-l", "9", "-v", input}); code != 0 {
		t.Fatalf("compress exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Compression Statistics:") {
		t.Errorf("verbose output lacks statistics:\n%s", stdout.String())
	}
	if _, err := os.Stat(input); !os.IsNotExist(err) {
		t.Fatalf("input not removed: %v", err)
	}

	c, stdout, _ = newTestCLI()
	if code := c.run([]string{"-i", input + ".comp"}); code != 0 {
		t.Fatalf("info exit %d", code)
	}
	if !strings.Contains(stdout.String(), "Hybrid (LZ77+Huffman)") {
		t.Errorf("info output:\n%s", stdout.String())
	}

	c, stdout, _ = newTestCLI()
	if code := c.run([]string{"-t", input + ".comp"}); code != 0 {
		t.Fatalf("test exit %d", code)
	}
	if !strings.Contains(stdout.String(), "passed") {
		t.Errorf("test output:\n%s", stdout.String())
	}

	c, _, stderr = newTestCLI()
	if code := c.run([]string{"-d", input + ".comp"}); code != 0 {
		t.Fatalf("decompress exit %d: %s", code, stderr.String())
	}
	got, err := os.ReadFile(input)
	if err != nil || !bytes.Equal(got, content) {
		t.Fatalf("restored file differs: %v", err)
	}
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	cases := [][]string{
		{},
		{"-a", "zip", input},
		{"-l", "0", input},
		{"-d", input},
		{"-t", filepath.Join(dir, "missing.comp")},
		{"-k", input + "," + filepath.Join(dir, "missing.txt")},
	}
	for _, args := range cases {
		c, _, stderr := newTestCLI()
		if code := c.run(args); code == 0 {
			t.Errorf("run(%q) succeeded", args)
		} else if stderr.Len() == 0 {
			t.Errorf("run(%q) failed silently", args)
		}
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	c, stdout, _ := newTestCLI()
	if code := c.run([]string{"--help"}); code != 0 || !strings.Contains(stdout.String(), "Usage:") {
		t.Errorf("--help exit %d:\n%s", code, stdout.String())
	}
	c, stdout, _ = newTestCLI()
	if code := c.run([]string{"--version"}); code != 0 || !strings.Contains(stdout.String(), version) {
		t.Errorf("--version exit %d:\n%s", code, stdout.String())
	}
}

func TestRunBenchmark(t *testing.T) {
	input := filepath.Join(t.TempDir(), "bench.txt")
	if err := os.WriteFile(input, []byte(strings.Repeat("benchmark me ", 300)), 0644); err != nil {
		t.Fatal(err)
	}
	c, stdout, stderr := newTestCLI()
	if code := c.run([]string{"-b", input}); code != 0 {
		t.Fatalf("benchmark exit %d: %s", code, stderr.String())
	}
	for _, name := range []string{"huffman", "hybrid", "lz4", "snappy", "zstd", "brotli"} {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("benchmark output lacks %s:\n%s", name, stdout.String())
		}
	}
}
