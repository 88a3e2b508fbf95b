package main

import (
	"bufio"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"golang.org/x/sys/unix"

	"github.com/openstb/rescuelcd/pkg/lcd"
	"github.com/openstb/rescuelcd/pkg/netstatus"
)

const (
	spinnerInterval = time.Second
	scrollInterval  = 100 * time.Millisecond

	// Re-probe the network once per probeTicks scroll steps, so an address
	// change shows up without hammering the resolver.
	probeTicks = 30
)

var spinnerFrames = [...]byte{'-', '\\', '|', '/'}

// display is one open surface plus its scroll state. A long URL bounces
// between its two ends; each display scrolls independently because the
// panels differ in width.
type display struct {
	*lcd.LCD
	count int // pixels scrolled off the left edge
	incr  int // +1 or -1
}

func runLoop() error {
	lcds, err := openDisplays()
	if err != nil {
		return err
	}
	defer releaseAll(lcds)

	displays := make([]*display, len(lcds))
	for i, l := range lcds {
		displays[i] = &display{LCD: l, incr: 1}
		drawSplash(l)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, unix.SIGTERM)

	status := openStatusPipe(pipeFlag)

	host, fam := waitForNetwork(displays, status, sig)
	if fam == netstatus.FamilyNone {
		shutdown(displays)
		return nil
	}
	url := netstatus.URL(host, fam)
	slog.Info("network is up", "url", url)

	tick := time.NewTicker(scrollInterval)
	defer tick.Stop()

	ticks := 0
	for {
		select {
		case <-sig:
			shutdown(displays)
			return nil
		case msg, ok := <-status:
			if !ok {
				status = nil
				continue
			}
			for _, d := range displays {
				drawHeadline(d.LCD, msg)
			}
		case <-tick.C:
			ticks++
			if ticks%probeTicks == 0 {
				if h, f := netstatus.Lookup(); f != netstatus.FamilyNone {
					if u := netstatus.URL(h, f); u != url {
						url = u
						slog.Info("address changed", "url", url)
						for _, d := range displays {
							d.count, d.incr = 0, 1
						}
					}
				}
			}
			for _, d := range displays {
				drawURL(d, url)
			}
		}
	}
}

// drawSplash blanks the display, centers the boot logo and snapshots the
// result, so later text lines restore logo pixels instead of black.
func drawSplash(l *lcd.LCD) {
	l.SetY(0)
	l.Clear(l.Height())

	if lw, lh := l.LogoSize(); lw > 0 {
		l.SetX((l.Width() - lw) / 2)
		l.SetY((l.Height() - lh) / 2)
		l.WriteLogo()
	}
	l.SaveBackground()

	l.SetFgColor(0xffffffff)
	drawHeadline(l, "RESCUE MODE")
}

// drawHeadline centers a message on the headline row and commits the frame.
// Messages wider than the display are truncated, not scrolled.
func drawHeadline(l *lcd.LCD, msg string) {
	fw, fh := l.FontWidth(), l.FontHeight()
	l.SetY(l.Height() - 4*fh)
	l.Clear(fh)

	if max := l.Width() / fw; len(msg) > max {
		msg = msg[:max]
	}
	l.SetX((l.Width() - len(msg)*fw) / 2)
	l.PutString(msg)

	if err := l.Update(); err != nil {
		slog.Warn("display update failed", "err", err)
	}
}

// waitForNetwork animates a spinner on the status row until an address is
// configured. It returns FamilyNone only on shutdown.
func waitForNetwork(displays []*display, status <-chan string, sig <-chan os.Signal) (string, netstatus.Family) {
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for spin := 0; ; spin++ {
		if host, fam := netstatus.Lookup(); fam != netstatus.FamilyNone {
			return host, fam
		}
		for _, d := range displays {
			drawSpinner(d.LCD, spinnerFrames[spin%len(spinnerFrames)])
		}
		select {
		case <-sig:
			return "", netstatus.FamilyNone
		case msg, ok := <-status:
			if !ok {
				status = nil
				continue
			}
			for _, d := range displays {
				drawHeadline(d.LCD, msg)
			}
		case <-tick.C:
		}
	}
}

func drawSpinner(l *lcd.LCD, c byte) {
	fw, fh := l.FontWidth(), l.FontHeight()
	l.SetY(l.Height() - 2*fh)
	l.Clear(fh)
	l.SetX((l.Width() - fw) / 2)
	l.PutChar(c)

	if err := l.Update(); err != nil {
		slog.Warn("display update failed", "err", err)
	}
}

// drawURL draws the rescue URL on the status row, centered when it fits and
// bounce-scrolled one pixel per tick when it does not.
func drawURL(d *display, url string) {
	l := d.LCD
	fw, fh := l.FontWidth(), l.FontHeight()
	l.SetY(l.Height() - 2*fh)
	l.Clear(fh)

	if width := len(url) * fw; width <= l.Width() {
		l.SetX((l.Width() - width) / 2)
	} else {
		l.SetX(-d.count)
		d.count += d.incr
		if d.count >= width-l.Width() {
			d.incr = -1
		} else if d.count <= 0 {
			d.incr = 1
		}
	}
	l.PutString(url)

	if err := l.Update(); err != nil {
		slog.Warn("display update failed", "err", err)
	}
}

func shutdown(displays []*display) {
	for _, d := range displays {
		d.SetY(0)
		d.Clear(d.Height())
		if err := d.Update(); err != nil {
			slog.Warn("display update failed", "err", err)
		}
	}
}

// openStatusPipe creates the status FIFO and feeds its lines to a channel.
// Each writer's close delivers EOF, so the pipe is reopened per writer. A
// nil channel is returned when the pipe is disabled or cannot be created.
func openStatusPipe(path string) <-chan string {
	if path == "" {
		return nil
	}
	if err := unix.Mkfifo(path, 0o622); err != nil && !errors.Is(err, unix.EEXIST) {
		slog.Warn("status pipe unavailable", "path", path, "err", err)
		return nil
	}

	ch := make(chan string)
	go func() {
		defer close(ch)
		for {
			f, err := os.OpenFile(path, os.O_RDONLY, 0)
			if err != nil {
				slog.Warn("status pipe open failed", "path", path, "err", err)
				return
			}
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				if line := strings.TrimSpace(sc.Text()); line != "" {
					ch <- line
				}
			}
			f.Close()
		}
	}()
	return ch
}
