package lcd

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/go-errors/errors"
	"golang.org/x/sys/unix"

	"github.com/openstb/rescuelcd/pkg/pixfmt"
)

// Framebuffer backend: the HDMI output behind /dev/fb0. The console is
// switched to graphics mode first so the kernel text console stops painting
// over the frame, then geometry and channel layout are queried via ioctl.

const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
	fbioBlank          = 0x4611
	fbBlankUnblank     = 0

	kdSetMode  = 0x4b3a
	kdText     = 0x00
	kdGraphics = 0x01
)

// consoleDevice is the virtual terminal switched into graphics mode.
var consoleDevice = "/dev/tty0"

// MapFramebuffer selects between mapping the hardware buffer directly
// (Update becomes a no-op, writes are immediately visible) and shadowing it
// in a private buffer committed with an explicit write. Mapping is the
// default; the write path exists for drivers whose mappings misbehave.
var MapFramebuffer = true

type fbBitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

type fbVarScreenInfo struct {
	Xres         uint32
	Yres         uint32
	XresVirtual  uint32
	YresVirtual  uint32
	Xoffset      uint32
	Yoffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          fbBitfield
	Green        fbBitfield
	Blue         fbBitfield
	Transp       fbBitfield
	Nonstd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	Pixclock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HsyncLen     uint32
	VsyncLen     uint32
	Sync         uint32
	Vmode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

type fbFixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	Xpanstep     uint16
	Ypanstep     uint16
	Ywrapstep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

func framebufferDevice() string {
	if dev := os.Getenv("FRAMEBUFFER"); dev != "" {
		return dev
	}
	return "/dev/fb0"
}

func openFramebuffer(dev string) (*LCD, error) {
	tty := graphicsMode()

	f, err := os.OpenFile(dev, os.O_RDWR, 0)
	if err != nil {
		releaseTTY(tty)
		return nil, errors.Errorf("lcd: open %s: %w", dev, err)
	}

	var vinfo fbVarScreenInfo
	if err := ioctlPtr(f.Fd(), fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		f.Close()
		releaseTTY(tty)
		return nil, errors.Errorf("lcd: FBIOGET_VSCREENINFO %s: %w", dev, err)
	}
	var finfo fbFixScreenInfo
	if err := ioctlPtr(f.Fd(), fbioGetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		f.Close()
		releaseTTY(tty)
		return nil, errors.Errorf("lcd: FBIOGET_FSCREENINFO %s: %w", dev, err)
	}

	bpp := int(vinfo.BitsPerPixel)
	switch bpp {
	case 4, 16, 32:
	default:
		f.Close()
		releaseTTY(tty)
		return nil, errors.Errorf("%w: %d", ErrUnsupportedDepth, bpp)
	}

	width, height := int(vinfo.Xres), int(vinfo.Yres)
	stride := int(finfo.LineLength)
	if tight := (width*bpp + 7) / 8; stride < tight {
		slog.Warn("lcd: framebuffer reports a stride smaller than the row size, correcting",
			"device", dev, "stride", stride, "row", tight)
		stride = tight
	}
	size := stride * height

	if err := ioctlInt(f.Fd(), fbioBlank, fbBlankUnblank); err != nil {
		// Not all drivers implement blanking.
		slog.Debug("lcd: FBIOBLANK failed", "device", dev, "err", err)
	}

	l := &LCD{
		kind:   framebufferMapped,
		dev:    f,
		tty:    tty,
		width:  width,
		height: height,
		bpp:    bpp,
		stride: stride,
		size:   size,
	}

	if MapFramebuffer {
		mem, err := unix.Mmap(int(f.Fd()), 0, int(finfo.SmemLen),
			unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		switch {
		case err != nil:
			slog.Warn("lcd: cannot map framebuffer, using buffered writes", "device", dev, "err", err)
		case len(mem) < size:
			munmap(mem)
			slog.Warn("lcd: framebuffer mapping too small, using buffered writes", "device", dev)
		default:
			l.mapped = mem
			l.data = mem[:size]
		}
	}
	if l.data == nil {
		l.data = make([]byte, size)
	}
	l.bg = make([]byte, size)

	if bpp >= 16 {
		// The hardware descriptor states the channel layout; no guessing.
		l.format = pixfmt.ColorFormat{
			Red:   pixfmt.Channel{Offset: vinfo.Red.Offset, Width: vinfo.Red.Length},
			Green: pixfmt.Channel{Offset: vinfo.Green.Offset, Width: vinfo.Green.Length},
			Blue:  pixfmt.Channel{Offset: vinfo.Blue.Offset, Width: vinfo.Blue.Length},
			Alpha: pixfmt.Channel{Offset: vinfo.Transp.Offset, Width: vinfo.Transp.Length},
		}
		l.SetFgColor(0xffffffff)
	}
	l.logo = selectLogo(width, height, bpp)
	return l, nil
}

// graphicsMode switches the console to graphics mode and returns the tty to
// restore at release time. A missing console is tolerated: the framebuffer
// still works, the text console may just flicker over it.
func graphicsMode() *os.File {
	tty, err := os.OpenFile(consoleDevice, os.O_RDWR, 0)
	if err != nil {
		slog.Warn("lcd: cannot open console", "device", consoleDevice, "err", err)
		return nil
	}
	if err := ioctlInt(tty.Fd(), kdSetMode, kdGraphics); err != nil {
		slog.Warn("lcd: cannot switch console to graphics mode", "err", err)
		tty.Close()
		return nil
	}
	return tty
}

func releaseTTY(tty *os.File) {
	if tty == nil {
		return
	}
	restoreTextMode(tty)
	tty.Close()
}

func restoreTextMode(tty *os.File) {
	if err := ioctlInt(tty.Fd(), kdSetMode, kdText); err != nil {
		slog.Warn("lcd: cannot restore console text mode", "err", err)
	}
}

func munmap(b []byte) {
	if err := unix.Munmap(b); err != nil {
		slog.Warn("lcd: munmap failed", "err", err)
	}
}

func ioctlPtr(fd, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func ioctlInt(fd, req uintptr, arg int) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
