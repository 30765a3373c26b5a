package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logrus.Level
		wantErr bool
	}{
		{"", logrus.InfoLevel, false},
		{"debug", logrus.DebugLevel, false},
		{" WARN ", logrus.WarnLevel, false},
		{"error", logrus.ErrorLevel, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info")
	require.NoError(t, err)

	log.WithField("session_id", "abc").Debug("hidden")
	log.WithFields(logrus.Fields{"session_id": "abc", "round": 2}).Info("round scored")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "round scored")
	assert.Contains(t, out, "session_id=abc")
	assert.Contains(t, out, "round=2")
}

func TestOpenAppendsToFile(t *testing.T) {
	std := logrus.StandardLogger()
	prevOut, prevLevel, prevFmt := std.Out, std.Level, std.Formatter
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetLevel(prevLevel)
		std.SetFormatter(prevFmt)
	})

	path := filepath.Join(t.TempDir(), "logs", "feedrank.log")
	log, closer, err := Open(path, "debug")
	require.NoError(t, err)

	log.Debug("from app logger")
	logrus.Warn("from standard logger")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "from app logger")
	assert.Contains(t, lines[1], "from standard logger")
}

func TestOpenDefaultPath(t *testing.T) {
	std := logrus.StandardLogger()
	prevOut := std.Out
	t.Cleanup(func() { std.SetOutput(prevOut) })

	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	_, closer, err := Open("", "")
	require.NoError(t, err)
	defer closer.Close()

	_, err = os.Stat(filepath.Join(dir, "feedrank", DefaultFile))
	assert.NoError(t, err)
}

func TestOpenRejectsBadLevel(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "x.log"), "chatty")
	assert.Error(t, err)
}
