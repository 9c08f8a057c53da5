package tui

import "testing"

func TestMarkdownStylePreferences(t *testing.T) {
	// Clear all inputs so only the one under test applies.
	clear := func() {
		t.Setenv("TASKSPARK_TUI_MD_STYLE", "")
		t.Setenv("TASKSPARK_TUI_THEME", "")
		t.Setenv("TASKSPARK_TUI_DARKBG", "")
		t.Setenv("COLORFGBG", "")
	}

	clear()
	t.Setenv("TASKSPARK_TUI_MD_STYLE", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("explicit override: got %q", got)
	}

	clear()
	t.Setenv("TASKSPARK_TUI_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("theme preference: got %q", got)
	}

	clear()
	t.Setenv("TASKSPARK_TUI_DARKBG", "false")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("darkbg=false: got %q", got)
	}

	clear()
	t.Setenv("COLORFGBG", "15;0")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("COLORFGBG dark bg: got %q", got)
	}

	clear()
	t.Setenv("COLORFGBG", "0;15")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("COLORFGBG light bg: got %q", got)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := renderMarkdown("   ", 40); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}
