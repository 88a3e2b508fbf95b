// mklogo converts a PNG into the logo asset formats the display driver
// embeds: an xz-compressed RGB565 frame for color panels, or a packed 1-bit
// wordmark emitted as a Go source literal for everything else.
//
//	mklogo -format rgb565 -width 400 -height 240 -o logo.rgb565.xz logo.png
//	mklogo -format mono -width 96 -height 32 -o logo_assets.go logo.png
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/ulikunitz/xz"
	"golang.org/x/image/draw"
)

var (
	formatFlag = flag.String("format", "rgb565", "output format (rgb565 or mono)")
	widthFlag  = flag.Int("width", 400, "output width in pixels")
	heightFlag = flag.Int("height", 240, "output height in pixels")
	outFlag    = flag.String("o", "", "output file (default stdout)")
	bigEndian  = flag.Bool("be", false, "emit big-endian rgb565")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <logo.png>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		slog.Error("mklogo failed", "err", err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	img := resize(src, *widthFlag, *heightFlag)

	var out []byte
	switch *formatFlag {
	case "rgb565":
		out, err = encodeRGB565XZ(img, *bigEndian)
	case "mono":
		out, err = encodeMonoSource(img)
	default:
		err = fmt.Errorf("unknown format %q", *formatFlag)
	}
	if err != nil {
		return err
	}

	if *outFlag == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(*outFlag, out, 0o644)
}

func resize(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// encodeRGB565XZ packs the image as RGB565 and compresses it, producing the
// stream the driver decompresses at startup.
func encodeRGB565XZ(img *image.RGBA, be bool) ([]byte, error) {
	b := img.Bounds()
	raw := make([]byte, 0, b.Dx()*b.Dy()*2)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			v := uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(bl>>11)
			if be {
				raw = append(raw, byte(v>>8), byte(v))
			} else {
				raw = append(raw, byte(v), byte(v>>8))
			}
		}
	}

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(raw); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeMonoSource thresholds the image to 1-bit and emits a Go source file
// with the bitmap packed in bands of eight rows, one byte per column, bit 0
// on top.
func encodeMonoSource(img *image.RGBA) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if h%8 != 0 {
		return nil, fmt.Errorf("mono height must be a multiple of 8, got %d", h)
	}

	packed := make([]byte, w*h/8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// Rec. 601 luma, full range.
			luma := (299*r + 587*g + 114*bl) / 1000
			if luma > 0x7fff {
				packed[y/8*w+x] |= 1 << (y % 8)
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("package lcd\n\n")
	fmt.Fprintf(&buf, "// The boot wordmark, %dx%d, one bit per pixel. The layout matches the font:\n", w, h)
	buf.WriteString("// bytes are columns of eight rows, bit 0 on top, " + bandCount(h) + " row bands stacked top\n")
	buf.WriteString("// to bottom. Regenerate with cmd/mklogo.\n")
	fmt.Fprintf(&buf, "const (\n\tmonoLogoWidth  = %d\n\tmonoLogoHeight = %d\n)\n\n", w, h)
	buf.WriteString("// monoLogoBit reports whether the wordmark pixel at (x, y) is set.\n")
	buf.WriteString("func monoLogoBit(x, y int) bool {\n")
	buf.WriteString("\tif x < 0 || x >= monoLogoWidth || y < 0 || y >= monoLogoHeight {\n\t\treturn false\n\t}\n")
	buf.WriteString("\treturn monoLogoBits[y/8*monoLogoWidth+x]&(1<<(y%8)) != 0\n}\n\n")
	buf.WriteString("var monoLogoBits = [monoLogoWidth * monoLogoHeight / 8]byte{")
	for i, v := range packed {
		if i%12 == 0 {
			buf.WriteString("\n\t")
		}
		fmt.Fprintf(&buf, "0x%02x,", v)
		if i%12 != 11 && i != len(packed)-1 {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

func bandCount(h int) string {
	names := []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight"}
	if n := h / 8; n < len(names) {
		return names[n]
	}
	return fmt.Sprint(h / 8)
}
