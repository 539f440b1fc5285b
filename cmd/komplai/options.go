package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	dserrors "github.com/komplai/designsystem/pkg/errors"
)

// minWidth is the narrowest page that still fits a task row.
const minWidth = 30

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return dserrors.NewOptionError("config", "resolve path", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return dserrors.NewOptionError("config", "file does not exist", err)
	}
	if info.IsDir() {
		return dserrors.NewOptionError("config", abs+" is a directory", nil)
	}

	return nil
}

func validateWidth(width int) error {
	if width == 0 {
		return nil
	}
	if width < minWidth {
		return dserrors.NewOptionError("width", "must be at least 30 columns", nil)
	}
	return nil
}

// resolveWidth returns the requested width, else the width of the terminal
// out writes to, else fallback.
func resolveWidth(requested int, out io.Writer, fallback int) int {
	if requested > 0 {
		return requested
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
