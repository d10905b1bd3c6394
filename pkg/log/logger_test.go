package log

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Loggers are passed to the renderer as core.Logger
var _ core.Logger = New("test")

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	logger := New("raytracer")

	tests := []struct {
		level       Level
		expectInfo  bool
		expectDebug bool
	}{
		{Notice, false, false},
		{Info, true, false},
		{Debug, true, true},
		{Error, false, false},
	}

	for _, tt := range tests {
		buf.Reset()
		SetLevel(tt.level)
		logger.Infof("info %d", 1)
		logger.Debugf("debug %d", 2)

		out := buf.String()
		if got := strings.Contains(out, "info 1"); got != tt.expectInfo {
			t.Errorf("Level %d: info logged = %v, expected %v", tt.level, got, tt.expectInfo)
		}
		if got := strings.Contains(out, "debug 2"); got != tt.expectDebug {
			t.Errorf("Level %d: debug logged = %v, expected %v", tt.level, got, tt.expectDebug)
		}
	}
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("scene").Warningf("missing %s", "light")

	out := buf.String()
	if !strings.Contains(out, "[scene] [WARNING] missing light") {
		t.Errorf("Unexpected log line %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Expected no colour codes in a buffer sink, got %q", out)
	}
}
