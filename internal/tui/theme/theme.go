// Package theme defines color themes for the flightpath dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the raw color set a theme is built from.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Dim        lipgloss.Color
	Muted      lipgloss.Color
	Text       lipgloss.Color
	Accent     lipgloss.Color
	AccentHi   lipgloss.Color
	Green      lipgloss.Color
	Orange     lipgloss.Color
	Red        lipgloss.Color
	Blue       lipgloss.Color
	Yellow     lipgloss.Color
	Magenta    lipgloss.Color
}

// Theme maps dashboard roles to colors.
type Theme struct {
	Name string

	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	Border       lipgloss.Color // Card borders
	BorderAccent lipgloss.Color // Focused borders, overlays
	TextDim      lipgloss.Color // Hints, axis labels
	TextMuted    lipgloss.Color // Card labels
	TextPrimary  lipgloss.Color // Values
	Accent       lipgloss.Color
	AccentBright lipgloss.Color

	Portfolio lipgloss.Color // Projected wealth series
	Expected  lipgloss.Color // Smooth expected path
	Goal      lipgloss.Color // Goal line and progress
	Gain      lipgloss.Color // Positive income
	Loss      lipgloss.Color // Negative income, errors
	Warn      lipgloss.Color // Goal out of reach
}

func build(name string, p Palette) Theme {
	return Theme{
		Name:         name,
		Background:   p.Background,
		Surface:      p.Surface,
		Border:       p.Border,
		BorderAccent: p.Accent,
		TextDim:      p.Dim,
		TextMuted:    p.Muted,
		TextPrimary:  p.Text,
		Accent:       p.Accent,
		AccentBright: p.AccentHi,
		Portfolio:    p.Blue,
		Expected:     p.Magenta,
		Goal:         p.Yellow,
		Gain:         p.Green,
		Loss:         p.Red,
		Warn:         p.Orange,
	}
}

// FlexokiDark is the default theme.
var FlexokiDark = build("flexoki-dark", Palette{
	Background: "#100F0F",
	Surface:    "#1C1B1A",
	Border:     "#403E3C",
	Dim:        "#575653",
	Muted:      "#878580",
	Text:       "#FFFCF0",
	Accent:     "#3AA99F",
	AccentHi:   "#5BC8BE",
	Green:      "#879A39",
	Orange:     "#DA702C",
	Red:        "#D14D41",
	Blue:       "#4385BE",
	Yellow:     "#D0A215",
	Magenta:    "#CE5D97",
})

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = build("catppuccin-mocha", Palette{
	Background: "#1E1E2E",
	Surface:    "#313244",
	Border:     "#585B70",
	Dim:        "#6C7086",
	Muted:      "#A6ADC8",
	Text:       "#CDD6F4",
	Accent:     "#89B4FA",
	AccentHi:   "#B4D0FB",
	Green:      "#A6E3A1",
	Orange:     "#FAB387",
	Red:        "#F38BA8",
	Blue:       "#74C7EC",
	Yellow:     "#F9E2AF",
	Magenta:    "#F5C2E7",
})

// TokyoNight is a cool blue/purple theme.
var TokyoNight = build("tokyo-night", Palette{
	Background: "#1A1B26",
	Surface:    "#24283B",
	Border:     "#565F89",
	Dim:        "#565F89",
	Muted:      "#A9B1D6",
	Text:       "#C0CAF5",
	Accent:     "#7AA2F7",
	AccentHi:   "#A9C1FF",
	Green:      "#9ECE6A",
	Orange:     "#FF9E64",
	Red:        "#F7768E",
	Blue:       "#7DCFFF",
	Yellow:     "#E0AF68",
	Magenta:    "#BB9AF7",
})

// Terminal uses ANSI 16 colors only.
var Terminal = build("terminal", Palette{
	Background: "0",
	Surface:    "0",
	Border:     "8",
	Dim:        "8",
	Muted:      "7",
	Text:       "15",
	Accent:     "6",
	AccentHi:   "14",
	Green:      "2",
	Orange:     "3",
	Red:        "1",
	Blue:       "4",
	Yellow:     "11",
	Magenta:    "5",
})

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Active is the currently selected theme.
var Active = FlexokiDark

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after name, wrapping around.
func Next(name string) Theme {
	for i, t := range All {
		if t.Name == name {
			return All[(i+1)%len(All)]
		}
	}
	return All[0]
}
