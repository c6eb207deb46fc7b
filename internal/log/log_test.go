package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_LevelFilters(t *testing.T) {
	closer, err := Init(Options{Level: "warn"})
	require.NoError(t, err)
	defer closer.Close()

	var buf bytes.Buffer
	SetOutput(&buf)

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "level=warning")
}

func TestInit_BadLevel(t *testing.T) {
	_, err := Init(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestInit_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")
	closer, err := Init(Options{Level: "debug", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	WithField("preset", "disk").Debugf("built %d cells", 19)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "built 19 cells")
	assert.Contains(t, string(data), "preset=disk")
}

func TestInit_CloseDetachesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")
	closer, err := Init(Options{Level: "info", File: path})
	require.NoError(t, err)

	Infof("before close")
	require.NoError(t, closer.Close())
	Infof("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
	assert.NotContains(t, string(data), "after close")
}
