// Package lcd drives the status displays of a set-top box: a small direct
// panel (OLED/LCD behind a raw device node) and an HDMI output behind a
// Linux framebuffer device.
//
// An LCD owns one pixel buffer plus a background snapshot of the same size.
// Text and the boot logo are drawn into the pixel buffer at a cursor
// position; Clear restores previously snapshotted pixels so a text line can
// be redrawn without repainting the whole frame; Update pushes the buffer to
// the hardware. All drawing is clipped per pixel, because the caller
// deliberately positions scrolling text partially off-screen.
package lcd

import (
	"io"
	"os"

	"github.com/go-errors/errors"

	"github.com/openstb/rescuelcd/pkg/pixfmt"
)

// DisplayType selects which physical display to open.
type DisplayType int

const (
	// DisplayTypeOLED is the small front panel addressed through a raw
	// device node.
	DisplayTypeOLED DisplayType = iota
	// DisplayTypeHDMI is the HDMI output addressed through a framebuffer
	// device.
	DisplayTypeHDMI
)

type surfaceKind int

const (
	panelDirect surfaceKind = iota
	framebufferMapped
)

// Orientation flags, fixed at open time per hardware variant.
const (
	flagReverseX = 1 << iota
	flagReverseY
	flagSwapAxes
)

// LCD is one open display surface.
type LCD struct {
	kind   surfaceKind
	dev    *os.File
	tty    *os.File // console switched to graphics mode, framebuffer only
	mapped []byte   // full hardware mapping when the framebuffer is mmap'd

	width  int // physical buffer dimensions
	height int
	bpp    int
	stride int // bytes per row, may exceed width*bpp/8
	size   int

	// Cursor in hardware axes, mirrored only when a pixel is plotted.
	// May be transiently out of bounds.
	x, y int

	data  []byte // current frame
	bg    []byte // background snapshot, same size as data
	fg    uint32 // native-encoded foreground color, bpp >= 16
	flags int

	format pixfmt.ColorFormat
	logo   logoAsset
}

// Open opens a display of the given type. It returns an error when no
// suitable device is available; a returned LCD is always fully initialized.
func Open(t DisplayType) (*LCD, error) {
	switch t {
	case DisplayTypeOLED:
		return openPanel()
	case DisplayTypeHDMI:
		return openFramebuffer(framebufferDevice())
	}
	return nil, errors.Errorf("unknown display type %d", t)
}

// Release closes the hardware handle and drops the buffers. The LCD must not
// be used afterwards.
func (l *LCD) Release() {
	if l.mapped != nil {
		munmap(l.mapped)
		l.mapped = nil
	}
	if l.tty != nil {
		restoreTextMode(l.tty)
		l.tty.Close()
		l.tty = nil
	}
	if l.dev != nil {
		l.dev.Close()
		l.dev = nil
	}
	l.data = nil
	l.bg = nil
}

// Width returns the display width in pixels, in the caller's (logical)
// orientation.
func (l *LCD) Width() int {
	if l.flags&flagSwapAxes != 0 {
		return l.height
	}
	return l.width
}

// Height returns the display height in pixels, in the caller's (logical)
// orientation.
func (l *LCD) Height() int {
	if l.flags&flagSwapAxes != 0 {
		return l.width
	}
	return l.height
}

// scale is the integer font and logo magnification for this panel. It grows
// with the resolution so text stays legible on large displays.
func (l *LCD) scale() int {
	return 1 + (l.height+120)/240
}

// SetX positions the cursor column. On axis-swapped panels the hardware
// column is the caller's row, so the assignment is exchanged.
func (l *LCD) SetX(x int) {
	if l.flags&flagSwapAxes != 0 {
		l.y = x
	} else {
		l.x = x
	}
}

// SetY positions the cursor row.
func (l *LCD) SetY(y int) {
	if l.flags&flagSwapAxes != 0 {
		l.x = y
	} else {
		l.y = y
	}
}

// Seek moves the cursor by a byte offset, interpreted in pixels of the
// native depth, and returns the cursor's byte offset into the buffer.
// Whence is io.SeekStart, io.SeekCurrent or io.SeekEnd. This gives the raw
// logo blit sequential write semantics over the 2D buffer.
func (l *LCD) Seek(offset int64, whence int) int64 {
	pixels := offset * 8 / int64(l.bpp)

	switch whence {
	case io.SeekStart:
		l.x, l.y = 0, 0
	case io.SeekCurrent:
	case io.SeekEnd:
		l.x, l.y = 0, l.height
	}

	pixels += int64(l.y)*int64(l.width) + int64(l.x)
	l.x = int(pixels % int64(l.width))
	l.y = int(pixels / int64(l.width))

	return int64(l.stride)*int64(l.y) + int64(l.x)*int64(l.bpp)/8
}

// Write copies p into the pixel buffer at the cursor's byte offset, clamped
// to the buffer. The cursor does not advance; raw blits interleave Write
// with relative Seeks to step through hardware rows.
func (l *LCD) Write(p []byte) (int, error) {
	off := l.Seek(0, io.SeekCurrent)
	if off < 0 || off >= int64(l.size) {
		return 0, nil
	}
	n := copy(l.data[off:], p)
	return n, nil
}

// SetFgColor sets the foreground color from a 32-bit ARGB value, encoded
// into the surface's native pixel format. It has no effect on 4bpp panels,
// which are grayscale.
func (l *LCD) SetFgColor(argb uint32) {
	if l.bpp >= 16 {
		l.fg = l.format.Encode(argb)
	}
}

// SaveBackground snapshots the current frame. Subsequent Clear calls restore
// pixels from this snapshot.
func (l *LCD) SaveBackground() {
	copy(l.bg, l.data)
}

// Clear restores lines rows starting at the cursor row from the background
// snapshot. The region is clamped to the display; a region reaching past the
// bottom is truncated.
func (l *LCD) Clear(lines int) {
	if l.flags&flagSwapAxes != 0 {
		// Text rows run along hardware columns on rotated panels.
		l.clearColumns(lines)
		return
	}

	y := l.y
	if y < 0 {
		lines += y
		y = 0
	}
	if y+lines > l.height {
		lines = l.height - y
	}
	for row := 0; row < lines; row++ {
		off := l.effY(y+row) * l.stride
		copy(l.data[off:off+l.stride], l.bg[off:off+l.stride])
	}
}

// clearColumns restores hardware columns [x, x+count) from the background.
func (l *LCD) clearColumns(count int) {
	x := l.x
	if x < 0 {
		count += x
		x = 0
	}
	if x+count > l.width {
		count = l.width - x
	}
	for col := 0; col < count; col++ {
		for y := 0; y < l.height; y++ {
			l.restorePixel(l.effX(x+col), y)
		}
	}
}

// Update commits the pixel buffer to the hardware. A write error or short
// write is reported and never retried; the caller decides whether to try
// again on its next cycle.
func (l *LCD) Update() error {
	switch l.kind {
	case framebufferMapped:
		if l.mapped != nil {
			// Writes land in the mapped hardware buffer directly.
			return nil
		}
		n, err := l.dev.WriteAt(l.data, 0)
		if err != nil {
			return errors.New(err)
		}
		if n != l.size {
			return errors.New(io.ErrShortWrite)
		}
		return nil
	default:
		n, err := l.dev.Write(l.data)
		if err != nil {
			return errors.New(err)
		}
		if n != l.size {
			return errors.New(io.ErrShortWrite)
		}
		return nil
	}
}
