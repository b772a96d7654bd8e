package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalGeometryNonTTY(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	geo := NewTerminalGeometry(f).Detect()
	assert.False(t, geo.Interactive)
	assert.Zero(t, geo.Width)
}

func TestTerminalGeometryDetectIsRepeatable(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	detector := NewTerminalGeometry(f)
	assert.Equal(t, detector.Detect(), detector.Detect())
}

func TestStaticGeometry(t *testing.T) {
	geo := Geometry{Interactive: true, Width: 80}
	assert.Equal(t, geo, StaticGeometry{Geometry: geo}.Detect())
}
