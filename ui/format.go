package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// FormatMemory renders a byte count with binary units, e.g. "200 MiB".
func FormatMemory(bytes uint64) string {
	return humanize.IBytes(bytes)
}

func FormatCPU(pct float64) string {
	return fmt.Sprintf("%5.1f%%", pct)
}

func FormatUptime(secs uint64) string {
	d := secs / 86400
	h := (secs % 86400) / 3600
	m := (secs % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %02dh%02dm", d, h, m)
	}
	return fmt.Sprintf("%02dh%02dm", h, m)
}

// Truncate shortens s to at most width terminal cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
