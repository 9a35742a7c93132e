// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainarterynetwork/bava/config"
	"github.com/brainarterynetwork/bava/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_TextAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := logging.New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", "subject", "s1")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "subject=s1")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := logging.New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info("loaded", "paths", 3)
	assert.Contains(t, buf.String(), `"msg":"loaded"`)
	assert.Contains(t, buf.String(), `"paths":3`)
}

func TestNew_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bava.log")
	log, closer, err := logging.New(config.LogConfig{Level: "debug", Format: "text", File: file, MaxSizeMB: 1}, nil)
	require.NoError(t, err)

	log.Debug("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNew_BadFormat(t *testing.T) {
	_, _, err := logging.New(config.LogConfig{Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}
