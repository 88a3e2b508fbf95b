package lcd

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-errors/errors"

	"github.com/openstb/rescuelcd/pkg/pixfmt"
)

// Direct-panel backend: a raw device node exposing a linear pixel buffer
// over write(2), no memory mapping. Geometry and pixel format are published
// by the panel driver as text pseudo-files.

// Probed in order; the first node that opens read-write wins.
var panelDevices = []string{
	"/dev/lcd1",       // high-resolution color front panel
	"/dev/dbox/oled0", // classic 128x64 grayscale OLED
	"/dev/fb1",        // panels exposed as a secondary framebuffer
}

// panelSysfsDir holds the xres/yres/bpp/color_format/rotate pseudo-files.
// A package variable so tests can point it at a scratch directory.
var panelSysfsDir = "/proc/stb/lcd"

// Defaults when a pseudo-file is absent or unreadable.
const (
	defaultPanelWidth  = 128
	defaultPanelHeight = 64
	defaultPanelBPP    = 4
)

func openPanel() (*LCD, error) {
	for _, dev := range panelDevices {
		f, err := os.OpenFile(dev, os.O_RDWR, 0)
		if err != nil {
			continue
		}
		l, err := newPanel(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return l, nil
	}
	return nil, errors.New(ErrNoDisplay)
}

func newPanel(f *os.File) (*LCD, error) {
	width := readHexFile(filepath.Join(panelSysfsDir, "xres"), defaultPanelWidth)
	height := readHexFile(filepath.Join(panelSysfsDir, "yres"), defaultPanelHeight)
	bpp := readHexFile(filepath.Join(panelSysfsDir, "bpp"), defaultPanelBPP)

	switch bpp {
	case 4, 16, 32:
	default:
		return nil, errors.Errorf("%w: %d", ErrUnsupportedDepth, bpp)
	}

	stride := (width*bpp + 7) / 8
	size := stride * height

	// Current frame and background snapshot in a single allocation.
	buf := make([]byte, 2*size)

	l := &LCD{
		kind:   panelDirect,
		dev:    f,
		width:  width,
		height: height,
		bpp:    bpp,
		stride: stride,
		size:   size,
		data:   buf[:size],
		bg:     buf[size:],
		flags:  panelOrientation(),
	}
	if bpp >= 16 {
		l.format = panelColorFormat(bpp)
		l.SetFgColor(0xffffffff)
	}
	l.logo = selectLogo(width, height, bpp)
	return l, nil
}

// readHexFile reads the first line of a pseudo-file as a hex value, falling
// back to def when the file is missing or malformed.
func readHexFile(path string, def int) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return def
	}
	line, _, _ := strings.Cut(string(data), "\n")
	v, err := strconv.ParseUint(strings.TrimSpace(line), 16, 31)
	if err != nil {
		return def
	}
	return int(v)
}

func panelColorFormat(bpp int) pixfmt.ColorFormat {
	if bpp == 32 {
		return pixfmt.ARGB8888
	}
	if data, err := os.ReadFile(filepath.Join(panelSysfsDir, "color_format")); err == nil {
		if f, ok := pixfmt.ParsePanelFormat(string(data)); ok {
			return f
		}
	}
	return pixfmt.RGB565
}

// panelOrientation reads the rotation pseudo-file: bit 0 mirrors X, bit 1
// mirrors Y, bit 2 swaps the axes. Panels mounted rotated or upside down
// report it here; absence means identity.
func panelOrientation() int {
	return readHexFile(filepath.Join(panelSysfsDir, "rotate"), 0) & (flagReverseX | flagReverseY | flagSwapAxes)
}
