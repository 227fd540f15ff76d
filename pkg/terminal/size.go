// Package terminal answers the two questions the banner renderer asks of
// the terminal it prints to: how many columns wide it is, and which color
// profile it supports.
package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// DefaultColumns is the width used when no terminal or COLUMNS value is
// available.
const DefaultColumns = 80

// Columns returns the current terminal width. It tries, in order:
//  1. the window size of stdout
//  2. the window size of stderr (in case stdout is redirected)
//  3. the COLUMNS environment variable
//  4. DefaultColumns
func Columns() int {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if cols := columnsFromTTY(fd); cols > 0 {
			return cols
		}
	}
	return columnsFromEnv()
}

// ColumnsFromFd returns the width of the terminal attached to fd, falling
// back to COLUMNS and then DefaultColumns.
func ColumnsFromFd(fd uintptr) int {
	if cols := columnsFromTTY(fd); cols > 0 {
		return cols
	}
	return columnsFromEnv()
}

// columnsFromTTY queries the window size of fd. Returns 0 on failure.
func columnsFromTTY(fd uintptr) int {
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

// columnsFromEnv reads COLUMNS, falling back to DefaultColumns.
func columnsFromEnv() int {
	return envInt("COLUMNS", DefaultColumns)
}

// envInt reads an integer from the named environment variable. Returns
// the fallback value if the variable is unset, empty, or not a valid
// positive integer.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
