package ui

import "testing"

func TestPaletteFor(t *testing.T) {
	if got := PaletteFor(ThemeDark); got.Background != "#2e2e2e" || got.Foreground != "#FFFFFF" {
		t.Errorf("dark palette = %+v", got)
	}
	if got := PaletteFor(ThemeLight); got != LightPalette {
		t.Errorf("light palette = %+v", got)
	}
	if got := PaletteFor("bogus"); got != LightPalette {
		t.Error("unknown theme should fall back to light")
	}
}

func TestToggle(t *testing.T) {
	if Toggle(ThemeLight) != ThemeDark {
		t.Error("light should toggle to dark")
	}
	if Toggle(ThemeDark) != ThemeLight {
		t.Error("dark should toggle to light")
	}
	if Toggle(Toggle(ThemeLight)) != ThemeLight {
		t.Error("double toggle should return to light")
	}
}
