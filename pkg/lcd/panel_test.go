package lcd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstb/rescuelcd/pkg/pixfmt"
)

func writeSysfs(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	old := panelSysfsDir
	panelSysfsDir = dir
	t.Cleanup(func() { panelSysfsDir = old })
}

func openFds(t *testing.T) int {
	t.Helper()
	ents, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(ents)
}

func TestReadHexFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "xres")
	require.NoError(t, os.WriteFile(path, []byte("190\n"), 0o644))
	assert.Equal(t, 0x190, readHexFile(path, 128))

	require.NoError(t, os.WriteFile(path, []byte("not hex\n"), 0o644))
	assert.Equal(t, 128, readHexFile(path, 128))

	assert.Equal(t, 64, readHexFile(filepath.Join(dir, "missing"), 64))
}

func TestNewPanel_Defaults(t *testing.T) {
	writeSysfs(t, nil)

	f, err := os.CreateTemp(t.TempDir(), "panel")
	require.NoError(t, err)
	defer f.Close()

	l, err := newPanel(f)
	require.NoError(t, err)

	assert.Equal(t, 128, l.Width())
	assert.Equal(t, 64, l.Height())
	assert.Equal(t, 4, l.bpp)
	assert.Equal(t, 64, l.stride)
	assert.Equal(t, 4096, l.size)
	assert.Equal(t, logoRaw4, l.logo.kind)
}

func TestNewPanel_SysfsGeometry(t *testing.T) {
	writeSysfs(t, map[string]string{
		"xres":         "190\n", // 400
		"yres":         "f0\n",  // 240
		"bpp":          "10\n",  // 16
		"color_format": "RGB565B\n",
	})

	f, err := os.CreateTemp(t.TempDir(), "panel")
	require.NoError(t, err)
	defer f.Close()

	l, err := newPanel(f)
	require.NoError(t, err)

	assert.Equal(t, 400, l.Width())
	assert.Equal(t, 240, l.Height())
	assert.Equal(t, 16, l.bpp)
	assert.Equal(t, 800, l.stride)
	assert.Equal(t, logoLarge, l.logo.kind)
	assert.Equal(t, pixfmt.RGB565BE, l.format)
	// White stays white under a byte swap.
	assert.Equal(t, uint32(0xffff), l.fg)
}

func TestNewPanel_Orientation(t *testing.T) {
	writeSysfs(t, map[string]string{"rotate": "6\n"})

	f, err := os.CreateTemp(t.TempDir(), "panel")
	require.NoError(t, err)
	defer f.Close()

	l, err := newPanel(f)
	require.NoError(t, err)
	assert.Equal(t, flagReverseY|flagSwapAxes, l.flags)
}

func TestNewPanel_RejectsUnknownDepth(t *testing.T) {
	writeSysfs(t, map[string]string{"bpp": "8\n"})

	f, err := os.CreateTemp(t.TempDir(), "panel")
	require.NoError(t, err)
	defer f.Close()

	_, err = newPanel(f)
	assert.ErrorIs(t, err, ErrUnsupportedDepth)
}

func TestOpenPanel_NoDeviceLeavesNoHandles(t *testing.T) {
	old := panelDevices
	dir := t.TempDir()
	panelDevices = []string{
		filepath.Join(dir, "lcd1"),
		filepath.Join(dir, "oled0"),
	}
	t.Cleanup(func() { panelDevices = old })

	before := openFds(t)
	l, err := openPanel()
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrNoDisplay)
	assert.Equal(t, before, openFds(t))
}

func TestOpenPanel_BadDepthClosesDevice(t *testing.T) {
	writeSysfs(t, map[string]string{"bpp": "8\n"})

	dir := t.TempDir()
	dev := filepath.Join(dir, "oled0")
	require.NoError(t, os.WriteFile(dev, nil, 0o644))

	old := panelDevices
	panelDevices = []string{dev}
	t.Cleanup(func() { panelDevices = old })

	before := openFds(t)
	l, err := openPanel()
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrUnsupportedDepth)
	assert.Equal(t, before, openFds(t))
}
