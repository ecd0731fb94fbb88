package benchmark

import (
	"io"
	"os"
	"testing"

	"github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	logging.SetBackend(logging.NewLogBackend(io.Discard, "", 0))
	os.Exit(m.Run())
}
