package tui

import (
	"os"
	"strings"
)

// Glyph helpers with an ASCII fallback for terminals without a UTF-8 locale
// (TASKSPARK_TUI_GLYPHS=ascii forces it).

func asciiGlyphs() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKSPARK_TUI_GLYPHS"))) {
	case "ascii":
		return true
	case "unicode", "utf8", "utf-8":
		return false
	}
	lang := strings.ToLower(os.Getenv("LC_ALL") + " " + os.Getenv("LC_CTYPE") + " " + os.Getenv("LANG"))
	if strings.TrimSpace(lang) == "" {
		return false
	}
	return !strings.Contains(lang, "utf-8") && !strings.Contains(lang, "utf8")
}

func glyphCheckbox(done bool) string {
	if asciiGlyphs() {
		if done {
			return "[x]"
		}
		return "[ ]"
	}
	if done {
		return "☑"
	}
	return "☐"
}

func glyphBullet() string {
	if asciiGlyphs() {
		return "*"
	}
	return "●"
}

func glyphSeparator() string {
	if asciiGlyphs() {
		return "|"
	}
	return "·"
}
