package app

import (
	"os"
	"path/filepath"
	"testing"

	"go-hexagons/internal/event"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const onePreset = `
presets:
  - name: small
    orientation: flat_top
    coordinate_system: axial
    hex_radius: 20
    axial_grid: {radius: 1}
`

// openHandles counts this process's file descriptors that point at path.
func openHandles(t *testing.T, path string) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no /proc/self/fd on this platform")
	}
	want, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)

	n := 0
	for _, e := range entries {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name()))
		if err == nil && target == want {
			n++
		}
	}
	return n
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

type recorder struct{ types []event.EventType }

func (r *recorder) OnEvent(e event.Event) { r.types = append(r.types, e.Type) }

func TestStart_Success(t *testing.T) {
	dir := t.TempDir()
	presets := writeFile(t, dir, "presets.yaml", onePreset)
	logFile := filepath.Join(dir, "viewer.log")

	rec := &recorder{}
	s, err := Start([]string{"--presets", presets, "--log-file", logFile}, rec)
	require.NoError(t, err)

	assert.Equal(t, "small", s.Viewer.PresetName())
	assert.Equal(t, 7, s.Viewer.Grid().Len())
	assert.Contains(t, rec.types, event.GridRebuilt, "first build reaches early listeners")
	assert.Equal(t, 1, openHandles(t, logFile))

	require.NoError(t, s.Close())
	assert.Zero(t, openHandles(t, logFile))
	assert.NoError(t, s.Close())
}

func TestStart_FailureClosesLogFile(t *testing.T) {
	dir := t.TempDir()
	presets := writeFile(t, dir, "presets.yaml", "presets: []\n")
	logFile := filepath.Join(dir, "viewer.log")

	s, err := Start([]string{"--presets", presets, "--log-file", logFile})
	require.Error(t, err)
	assert.Nil(t, s)

	data, readErr := os.ReadFile(logFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "startup")
	assert.Zero(t, openHandles(t, logFile))
}

func TestStart_MissingPresetsFallsBack(t *testing.T) {
	s, err := Start([]string{"--presets", filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "axial-disk", s.Viewer.PresetName())
}

func TestStart_SettingsErrors(t *testing.T) {
	_, err := Start([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)

	_, err = Start([]string{"--log-level", "loud"})
	assert.Error(t, err)
}
