package editor

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rastkit/raint"
)

// ParseSize parses a canvas size line: one number for a square canvas
// or two numbers for width and height. Accepted values clamp to the
// canvas size domain; malformed input reports false.
func ParseSize(input string) (width, height int, ok bool) {
	fields := strings.Fields(input)
	switch len(fields) {
	case 0:
		return 0, 0, false
	case 1:
		n, err := strconv.ParseUint(fields[0], 10, 31)
		if err != nil {
			return 0, 0, false
		}
		size := clampSize(int(n))
		return size, size, true
	default:
		w, err1 := strconv.ParseUint(fields[0], 10, 31)
		h, err2 := strconv.ParseUint(fields[1], 10, 31)
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		return clampSize(int(w)), clampSize(int(h)), true
	}
}

func clampSize(n int) int {
	return min(max(n, raint.MinCanvasSize), raint.MaxCanvasSize)
}

// ParseColor parses either three space-separated 8-bit values or a
// single hex string. It reports false for anything else; callers keep
// the previous color in that case.
func ParseColor(input string) (raint.Color, bool) {
	fields := strings.Fields(input)
	if len(fields) >= 3 {
		r, err1 := strconv.ParseUint(fields[0], 10, 8)
		g, err2 := strconv.ParseUint(fields[1], 10, 8)
		b, err3 := strconv.ParseUint(fields[2], 10, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return raint.Color{}, false
		}
		return raint.RGB(uint8(r), uint8(g), uint8(b)), true
	}
	if len(fields) == 1 {
		return raint.Hex(fields[0])
	}
	return raint.Color{}, false
}

// ParseThickness parses a brush thickness, clamping accepted values to
// the thickness domain. Malformed input reports false.
func ParseThickness(input string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(input), 10, 31)
	if err != nil {
		return 0, false
	}
	return min(max(int(n), raint.MinThickness), raint.MaxThickness), true
}

// ExpandPath substitutes a leading ~ with the user's home directory.
// Paths without the prefix, or when no home directory is known, pass
// through unchanged.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

// Format identifies an on-disk image format selected by extension.
type Format int

const (
	// FormatRAI is the editor's native binary format.
	FormatRAI Format = iota
	// FormatPNG is a lossless PNG export.
	FormatPNG
	// FormatPDF is a printable PDF export.
	FormatPDF
)

// DetectFormat picks the save format from the path extension. Paths
// without a recognized extension get ".rai" appended and use the
// native format.
func DetectFormat(path string) (string, Format) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return path, FormatPNG
	case ".pdf":
		return path, FormatPDF
	case ".rai":
		return path, FormatRAI
	default:
		return path + ".rai", FormatRAI
	}
}
