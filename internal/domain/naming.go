package domain

import (
	"path/filepath"
	"strings"
)

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(lintDir string) string {
	return filepath.Join(lintDir, "logs", "lintmux.log")
}

// ToolLogPath returns the path to a tool-specific log file.
func ToolLogPath(lintDir, tool string) string {
	return filepath.Join(lintDir, "logs", "tool-"+sanitizeToolName(tool)+".log")
}

// sanitizeToolName makes a tool name safe for use as a file name.
func sanitizeToolName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
