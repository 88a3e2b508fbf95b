// rescueui renders connectivity status on the box's displays while the
// rescue system is running: the boot splash, a DHCP-wait indicator and the
// URL of the rescue web interface, scrolled when it does not fit.
//
// Without a subcommand it runs the status loop. One-shot subcommands exist
// for scripting:
//
//	rescueui text <message>   draw a message and exit
//	rescueui splash           draw the boot splash and exit
//	rescueui clear            blank the displays and exit
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openstb/rescuelcd/pkg/lcd"
)

var (
	displayFlag string
	pipeFlag    string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "rescueui",
	Short: "Render rescue-mode status on the front panel and HDMI output",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verboseFlag {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoop()
	},
}

var splashCmd = &cobra.Command{
	Use:   "splash",
	Short: "Draw the boot splash and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDisplays(func(l *lcd.LCD) {
			drawSplash(l)
		})
	},
}

var textCmd = &cobra.Command{
	Use:   "text <message>",
	Short: "Draw a message and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg := strings.Join(args, " ")
		return withDisplays(func(l *lcd.LCD) {
			fw, fh := l.FontWidth(), l.FontHeight()
			l.SetY((l.Height() - fh) / 2)
			l.Clear(fh)
			l.SetX((l.Width() - len(msg)*fw) / 2)
			l.PutString(msg)
			if err := l.Update(); err != nil {
				slog.Warn("display update failed", "err", err)
			}
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Blank the displays and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDisplays(func(l *lcd.LCD) {
			l.SetY(0)
			l.Clear(l.Height())
			if err := l.Update(); err != nil {
				slog.Warn("display update failed", "err", err)
			}
		})
	},
}

// openDisplays opens the displays selected by --display. Missing hardware is
// logged, not fatal, as long as at least one display opens.
func openDisplays() ([]*lcd.LCD, error) {
	var types []lcd.DisplayType
	switch displayFlag {
	case "oled":
		types = []lcd.DisplayType{lcd.DisplayTypeOLED}
	case "hdmi":
		types = []lcd.DisplayType{lcd.DisplayTypeHDMI}
	default:
		types = []lcd.DisplayType{lcd.DisplayTypeOLED, lcd.DisplayTypeHDMI}
	}

	var displays []*lcd.LCD
	for _, t := range types {
		l, err := lcd.Open(t)
		if err != nil {
			slog.Debug("display unavailable", "type", t, "err", err)
			continue
		}
		displays = append(displays, l)
	}
	if len(displays) == 0 {
		return nil, lcd.ErrNoDisplay
	}
	return displays, nil
}

func withDisplays(fn func(*lcd.LCD)) error {
	displays, err := openDisplays()
	if err != nil {
		return err
	}
	defer releaseAll(displays)
	for _, l := range displays {
		fn(l)
	}
	return nil
}

func releaseAll(displays []*lcd.LCD) {
	for _, l := range displays {
		l.Release()
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&displayFlag, "display", "all", "display to drive (oled, hdmi or all)")
	rootCmd.PersistentFlags().StringVar(&pipeFlag, "status-pipe", "/run/rescueui.status", "named pipe for status messages (empty disables)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(splashCmd, textCmd, clearCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("rescueui failed", "err", err)
		os.Exit(1)
	}
}
