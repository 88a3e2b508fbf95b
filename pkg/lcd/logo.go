package lcd

import (
	"bytes"
	_ "embed"
	"io"
	"log/slog"
	"sync"

	"github.com/ulikunitz/xz"
)

type logoKind int

const (
	logoNone   logoKind = iota
	logoRaw4            // wordmark pre-packed for the 128px 4bpp panel
	logoLarge           // pre-rendered full frame, decompressed on first use
	logoPacked          // 1-bit wordmark, expanded to the native depth at draw time
)

// logoAsset identifies the compiled-in logo chosen for a surface at open
// time. The pixel data lives in package-level caches.
type logoAsset struct {
	kind   logoKind
	width  int
	height int
}

const (
	largeLogoWidth  = 400
	largeLogoHeight = 240
)

//go:embed assets/logo400x240.rgb565.xz
var largeLogoXZ []byte

// selectLogo picks the asset matching a surface's native geometry. Portrait
// surfaces get none; everything landscape at least gets the wordmark.
func selectLogo(width, height, bpp int) logoAsset {
	switch {
	case width == 128 && bpp == 4:
		return logoAsset{kind: logoRaw4, width: monoLogoWidth, height: monoLogoHeight}
	case width == largeLogoWidth && height == largeLogoHeight && bpp == 16:
		return logoAsset{kind: logoLarge, width: largeLogoWidth, height: largeLogoHeight}
	case width >= height:
		return logoAsset{kind: logoPacked, width: monoLogoWidth, height: monoLogoHeight}
	}
	return logoAsset{}
}

// LogoSize reports the on-screen footprint WriteLogo will cover, so the
// caller can center it.
func (l *LCD) LogoSize() (width, height int) {
	switch l.logo.kind {
	case logoNone:
		return 0, 0
	case logoPacked:
		s := l.scale()
		return l.logo.width * s, l.logo.height * s
	}
	return l.logo.width, l.logo.height
}

// WriteLogo draws the selected logo at the cursor.
func (l *LCD) WriteLogo() {
	switch l.logo.kind {
	case logoRaw4:
		l.blitRows(monoLogo4bpp(), monoLogoWidth/2)
	case logoLarge:
		if data := largeLogo(); data != nil {
			l.blitRows(data, largeLogoWidth*2)
		}
	case logoPacked:
		l.expandPacked()
	}
}

// blitRows writes raw native-depth rows at the cursor, stepping down one
// hardware row between writes. Write does not advance the cursor, so a
// relative seek of one stride moves exactly one row.
func (l *LCD) blitRows(data []byte, rowBytes int) {
	for off := 0; off+rowBytes <= len(data); off += rowBytes {
		l.Write(data[off : off+rowBytes])
		l.Seek(int64(l.stride), io.SeekCurrent)
	}
}

// expandPacked scales the 1-bit wordmark up to the panel's scale factor and
// emits native pixels: foreground color where set, zero elsewhere.
func (l *LCD) expandPacked() {
	s := l.scale()
	swap := l.flags&flagSwapAxes != 0

	for row := 0; row < l.logo.height*s; row++ {
		for col := 0; col < l.logo.width*s; col++ {
			var v uint32
			if monoLogoBit(col/s, row/s) {
				v = l.fg
				if l.bpp == 4 {
					v = 1
				}
			}
			if swap {
				l.setPixel(l.x+row, l.y+col, v)
			} else {
				l.setPixel(l.x+col, l.y+row, v)
			}
		}
	}
}

// decompress inflates an xz stream into dst, which must be filled exactly.
func decompress(dst, src []byte) bool {
	r, err := xz.NewReader(bytes.NewReader(src))
	if err != nil {
		return false
	}
	if _, err := io.ReadFull(r, dst); err != nil {
		return false
	}
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return false
	}
	return true
}

var (
	largeLogoOnce sync.Once
	largeLogoData []byte

	mono4Once sync.Once
	mono4Data []byte
)

// largeLogo returns the decompressed full-frame asset. The decode runs at
// most once per process, no matter how many surfaces request it.
func largeLogo() []byte {
	largeLogoOnce.Do(func() {
		buf := make([]byte, largeLogoWidth*largeLogoHeight*2)
		if !decompress(buf, largeLogoXZ) {
			slog.Warn("lcd: logo asset is corrupt, skipping logo")
			return
		}
		largeLogoData = buf
	})
	return largeLogoData
}

// monoLogo4bpp returns the wordmark expanded to nibble-packed 4bpp rows,
// derived once from the 1-bit source.
func monoLogo4bpp() []byte {
	mono4Once.Do(func() {
		rowBytes := monoLogoWidth / 2
		buf := make([]byte, rowBytes*monoLogoHeight)
		for y := 0; y < monoLogoHeight; y++ {
			for x := 0; x < monoLogoWidth; x++ {
				if !monoLogoBit(x, y) {
					continue
				}
				if x&1 == 0 {
					buf[y*rowBytes+x/2] |= 0xf0
				} else {
					buf[y*rowBytes+x/2] |= 0x0f
				}
			}
		}
		mono4Data = buf
	})
	return mono4Data
}
