// Package logger provides terse, colorized console logging for the service
// banner, tagged status lines, and startup statistics.
package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// colorEnabled is false when stdout isn't a real terminal, so piped or
// redirected output (CI logs, `| tee`) doesn't carry raw escape codes.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func colorize(c string) string {
	if !colorEnabled {
		return ""
	}
	return c
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}

func line(color, level, tag, msg string) {
	fmt.Printf("%s[%s]%s %s%-7s%s %s%-12s%s %s\n",
		colorize(colorBlue), timestamp(), colorize(colorReset),
		colorize(color), level, colorize(colorReset),
		colorize(colorCyan), tag, colorize(colorReset),
		msg)
}

// Info logs a neutral status line under the given tag.
func Info(tag, msg string) {
	line(colorReset, "INFO", tag, msg)
}

// Success logs a positive status line under the given tag.
func Success(tag, msg string) {
	line(colorGreen, "OK", tag, msg)
}

// Warn logs a cautionary status line under the given tag.
func Warn(tag, msg string) {
	line(colorYellow, "WARN", tag, msg)
}

// Error logs a failure status line under the given tag.
func Error(tag, msg string) {
	line(colorRed, "ERROR", tag, msg)
}

// Banner prints the startup banner for the given build version.
func Banner(version string) {
	v := version
	if v == "" {
		v = "dev"
	}
	fmt.Println(colorize(colorBold) + colorize(colorCyan) + "carnav-core" + colorize(colorReset) + " " + v)
	fmt.Println(strings.Repeat("-", 40))
}

// Server announces the address the HTTP server is about to bind to.
func Server(addr string) {
	fmt.Printf("%s[%s]%s %sLISTEN %s%s http://%s\n", colorize(colorBlue), timestamp(), colorize(colorReset), colorize(colorGreen), colorize(colorReset), colorize(colorBold), addr)
}

// Section prints a section header, used before a block of related Stats lines.
func Section(title string) {
	fmt.Println()
	fmt.Println(colorize(colorBold) + title + colorize(colorReset))
	fmt.Println(strings.Repeat("-", len(title)))
}

// Stats prints one aligned key/value statistics line under a Section, with
// the value comma-grouped so large offer/region counts stay readable.
func Stats(key string, value int) {
	fmt.Printf("  %-20s %s\n", key, humanize.Comma(int64(value)))
}
