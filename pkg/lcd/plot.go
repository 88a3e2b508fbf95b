package lcd

import (
	"encoding/binary"
	"fmt"
)

// Coordinate handling: the cursor and all drawing loops work in hardware
// axes (SetX/SetY already account for axis swap). Mirroring for reversed
// panels happens in exactly one place, when a pixel offset is computed, so
// the drawing code stays orientation-agnostic.

// effX mirrors a column for ReverseX panels.
func (l *LCD) effX(x int) int {
	if l.flags&flagReverseX != 0 {
		return l.width - 1 - x
	}
	return x
}

// effY mirrors a row for ReverseY panels.
func (l *LCD) effY(y int) int {
	if l.flags&flagReverseY != 0 {
		return l.height - 1 - y
	}
	return y
}

// plot draws one pixel at hardware coordinates (x, y): the foreground color
// when on, otherwise the background snapshot pixel. Out-of-bounds pixels are
// dropped. On 4bpp panels there is no color; the nibble is set or cleared.
func (l *LCD) plot(x, y int, on bool) {
	x, y = l.effX(x), l.effY(y)
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}

	switch l.bpp {
	case 4:
		idx := y*l.stride + x/2
		if idx >= l.size {
			return
		}
		mask := byte(0xf0)
		if x&1 != 0 {
			mask = 0x0f
		}
		if on {
			l.data[idx] |= mask
		} else {
			l.data[idx] &^= mask
		}
	case 16:
		idx := y*l.stride + x*2
		if idx+2 > l.size {
			return
		}
		if on {
			binary.LittleEndian.PutUint16(l.data[idx:], uint16(l.fg))
		} else {
			copy(l.data[idx:idx+2], l.bg[idx:idx+2])
		}
	case 32:
		idx := y*l.stride + x*4
		if idx+4 > l.size {
			return
		}
		if on {
			binary.LittleEndian.PutUint32(l.data[idx:], l.fg)
		} else {
			copy(l.data[idx:idx+4], l.bg[idx:idx+4])
		}
	default:
		// The set of depths is fixed by hardware discovery at open time.
		panic(fmt.Sprintf("lcd: unsupported depth %d", l.bpp))
	}
}

// setPixel stores a native pixel value at hardware coordinates (x, y),
// clipped like plot. The logo expansion uses it to emit foreground-or-zero
// pixels independent of the background snapshot.
func (l *LCD) setPixel(x, y int, v uint32) {
	x, y = l.effX(x), l.effY(y)
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}

	switch l.bpp {
	case 4:
		idx := y*l.stride + x/2
		if idx >= l.size {
			return
		}
		mask := byte(0xf0)
		if x&1 != 0 {
			mask = 0x0f
		}
		if v != 0 {
			l.data[idx] |= mask
		} else {
			l.data[idx] &^= mask
		}
	case 16:
		idx := y*l.stride + x*2
		if idx+2 > l.size {
			return
		}
		binary.LittleEndian.PutUint16(l.data[idx:], uint16(v))
	case 32:
		idx := y*l.stride + x*4
		if idx+4 > l.size {
			return
		}
		binary.LittleEndian.PutUint32(l.data[idx:], v)
	default:
		panic(fmt.Sprintf("lcd: unsupported depth %d", l.bpp))
	}
}

// restorePixel copies one pixel from the background snapshot. Coordinates
// are in buffer space; callers apply mirroring themselves.
func (l *LCD) restorePixel(x, y int) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}

	switch l.bpp {
	case 4:
		idx := y*l.stride + x/2
		if idx >= l.size {
			return
		}
		mask := byte(0xf0)
		if x&1 != 0 {
			mask = 0x0f
		}
		l.data[idx] = l.data[idx]&^mask | l.bg[idx]&mask
	case 16:
		idx := y*l.stride + x*2
		if idx+2 <= l.size {
			copy(l.data[idx:idx+2], l.bg[idx:idx+2])
		}
	case 32:
		idx := y*l.stride + x*4
		if idx+4 <= l.size {
			copy(l.data[idx:idx+4], l.bg[idx:idx+4])
		}
	default:
		panic(fmt.Sprintf("lcd: unsupported depth %d", l.bpp))
	}
}
