package ui

import "github.com/charmbracelet/lipgloss"

// Button colors. They stay the same in both themes.
var (
	ColorGreen  = lipgloss.Color("#2E8B57")
	ColorRed    = lipgloss.Color("#CC3333")
	ColorBlue   = lipgloss.Color("#3366CC")
	ColorOrange = lipgloss.Color("#E69138")
	ColorPurple = lipgloss.Color("#7E57C2")
	ColorGray   = lipgloss.Color("#666666")
	ColorWhite  = lipgloss.Color("#FFFFFF")
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Palette is the set of surface colors a theme swaps.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Dim        lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
}

var (
	DarkPalette = Palette{
		Background: lipgloss.Color("#2e2e2e"),
		Foreground: lipgloss.Color("#FFFFFF"),
		Dim:        lipgloss.Color("#9A9A9A"),
		Accent:     lipgloss.Color("#00FFFF"),
		Border:     lipgloss.Color("#5A5A5A"),
		Error:      lipgloss.Color("#FF6B6B"),
	}

	LightPalette = Palette{
		Background: lipgloss.Color("#F5F5F5"),
		Foreground: lipgloss.Color("#000000"),
		Dim:        lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#005F87"),
		Border:     lipgloss.Color("#BBBBBB"),
		Error:      lipgloss.Color("#CC0000"),
	}
)

// PaletteFor returns the palette for a theme name. Unknown names are light.
func PaletteFor(theme string) Palette {
	if theme == ThemeDark {
		return DarkPalette
	}
	return LightPalette
}

// Toggle flips between the dark and light theme names.
func Toggle(theme string) string {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Styles are the rendered styles for one palette.
type Styles struct {
	Base             lipgloss.Style
	Title            lipgloss.Style
	PanelTitle       lipgloss.Style
	PanelTitleActive lipgloss.Style
	Item             lipgloss.Style
	Selected         lipgloss.Style
	Dim              lipgloss.Style
	Status           lipgloss.Style
	RecordingDot     lipgloss.Style
	Divider          lipgloss.Style
	FooterKey        lipgloss.Style
	FooterDesc       lipgloss.Style
	Dialog           lipgloss.Style
	DialogTitle      lipgloss.Style
	ErrorTitle       lipgloss.Style
	Input            lipgloss.Style
}

func NewStyles(p Palette) Styles {
	base := lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Background)

	return Styles{
		Base: base,

		Title: base.
			Bold(true).
			Foreground(p.Accent),

		PanelTitle: base.
			Bold(true),

		PanelTitleActive: base.
			Bold(true).
			Foreground(p.Accent),

		Item: base,

		Selected: base.
			Bold(true).
			Reverse(true),

		Dim: base.
			Foreground(p.Dim),

		Status: base.
			Foreground(p.Dim).
			Italic(true),

		RecordingDot: base.
			Foreground(ColorRed).
			Bold(true),

		Divider: base.
			Foreground(p.Border),

		FooterKey: base.
			Foreground(p.Accent).
			Bold(true),

		FooterDesc: base.
			Foreground(p.Dim),

		Dialog: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			BorderBackground(p.Background).
			Padding(1, 2),

		DialogTitle: base.
			Bold(true).
			Foreground(p.Accent),

		ErrorTitle: base.
			Bold(true).
			Foreground(p.Error),

		Input: base.
			Underline(true),
	}
}

// Button renders a bar label on a colored background.
func Button(label string, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite).
		Background(bg).
		Padding(0, 1).
		Render(label)
}

// DisabledButton renders a label that cannot act right now.
func DisabledButton(label string) string {
	return lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorGray).
		Padding(0, 1).
		Render(label)
}
