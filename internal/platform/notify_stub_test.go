//go:build !linux && !darwin && !windows

package platform

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestNotifyFallsBackToLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	if err := Notify("Saved", "/tmp/a.png", Options{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.Contains(got, DefaultAppName+": Saved: /tmp/a.png") {
		t.Fatalf("unexpected log %q", got)
	}
}
