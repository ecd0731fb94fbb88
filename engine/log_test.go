package engine

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/op/go-logging"

	"github.com/FitrahHaque/compfile/compressor"
)

func TestMain(m *testing.M) {
	logging.SetBackend(logging.NewLogBackend(io.Discard, "", 0))
	os.Exit(m.Run())
}

// captureLogs routes every record to memory at DEBUG until the test ends.
func captureLogs(t *testing.T) func() []string {
	t.Helper()
	mem := logging.NewMemoryBackend(64)
	logging.SetBackend(mem).SetLevel(logging.DEBUG, "")
	t.Cleanup(func() {
		logging.SetBackend(logging.NewLogBackend(io.Discard, "", 0))
	})
	return func() []string {
		var messages []string
		for n := mem.Head(); n != nil; n = n.Next() {
			messages = append(messages, n.Record.Message())
		}
		return messages
	}
}

func TestLogMessagesAreFormatted(t *testing.T) {
	messages := captureLogs(t)
	cfg := Config{Algorithm: compressor.LZ77, Level: compressor.LevelNormal}
	if _, _, err := Compress([]byte("seventeen bytes!!"), cfg); err != nil {
		t.Fatal(err)
	}

	got := messages()
	want := "compressing 17 bytes with LZ77 at level 5"
	found := false
	for _, m := range got {
		if strings.Contains(m, "%") {
			t.Errorf("unformatted verb in %q", m)
		}
		if m == want {
			found = true
		}
	}
	if !found {
		t.Errorf("no record %q among %q", want, got)
	}
}

func TestVerificationFailureIsLogged(t *testing.T) {
	messages := captureLogs(t)
	image := compressImage(t, []byte("verification"), testConfig(compressor.LZ77))
	image[24] ^= 0x01
	if _, _, err := Decompress(image, Config{}); err == nil {
		t.Fatal("tampered checksum accepted")
	}
	for _, m := range messages() {
		if strings.HasPrefix(m, "verification failed: ") && strings.Contains(m, compressor.ErrChecksumMismatch.Error()) {
			return
		}
	}
	t.Errorf("no verification failure record among %q", messages())
}
