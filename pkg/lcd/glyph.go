package lcd

import (
	"fmt"

	"github.com/openstb/rescuelcd/pkg/font"
)

// FontWidth returns the width of one character cell in pixels, including the
// panel's scale factor.
func (l *LCD) FontWidth() int {
	return font.Width * l.scale()
}

// FontHeight returns the height of one character cell in pixels, including
// the panel's scale factor.
func (l *LCD) FontHeight() int {
	return font.Height * l.scale()
}

// PutChar draws one character at the cursor and advances the cursor by one
// character cell. Columns outside the panel are skipped pixel by pixel, but
// the cursor still advances, so text positioned partially off-screen keeps
// its alignment while scrolling.
func (l *LCD) PutChar(c byte) {
	s := l.scale()
	swap := l.flags&flagSwapAxes != 0

	for col := 0; col < font.Width*s; col++ {
		bits := font.Column(c, col/s)

		cx := l.x
		if swap {
			cx = l.y
		}
		if cx >= 0 && cx < l.Width() {
			for row := 0; row < font.Height*s; row++ {
				on := bits&(1<<(row/s)) != 0
				if swap {
					l.plot(l.x+row, l.y, on)
				} else {
					l.plot(l.x, l.y+row, on)
				}
			}
		}

		if swap {
			l.y++
		} else {
			l.x++
		}
	}
}

// PutString draws a string at the cursor. There is no wrapping; overflow is
// the caller's concern.
func (l *LCD) PutString(s string) {
	for i := 0; i < len(s); i++ {
		l.PutChar(s[i])
	}
}

// Printf formats and draws a string at the cursor, returning the number of
// characters drawn.
func (l *LCD) Printf(format string, args ...any) int {
	s := fmt.Sprintf(format, args...)
	l.PutString(s)
	return len(s)
}
