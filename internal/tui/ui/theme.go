package ui

import "github.com/gdamore/tcell/v2"

// Pair is a foreground and background color.
type Pair struct {
	Fg, Bg tcell.Color
}

// Theme holds the TUI palette.
type Theme struct {
	Bg, Fg  tcell.Color
	Border  tcell.Color
	Title   tcell.Color
	Counter tcell.Color
	Prompt  tcell.Color

	Key        tcell.Color
	NumericKey tcell.Color

	Header        Pair
	Cursor        Pair
	CrumbActive   Pair
	CrumbInactive Pair

	// Listing content.
	Section tcell.Color
	Price   tcell.Color
	Offer   tcell.Color
	Wish    tcell.Color
	Star    tcell.Color

	// Flash levels.
	Info, Warn, Error tcell.Color
}

// DefaultTheme is dark, in slate and green tones.
func DefaultTheme() *Theme {
	return &Theme{
		Bg:      tcell.ColorBlack,
		Fg:      tcell.ColorLightSlateGray,
		Border:  tcell.ColorSlateGray,
		Title:   tcell.ColorMediumSeaGreen,
		Counter: tcell.ColorPapayaWhip,
		Prompt:  tcell.ColorDodgerBlue,

		Key:        tcell.ColorDodgerBlue,
		NumericKey: tcell.ColorFuchsia,

		Header:        Pair{tcell.ColorWhite, tcell.ColorBlack},
		Cursor:        Pair{tcell.ColorBlack, tcell.ColorMediumSeaGreen},
		CrumbActive:   Pair{tcell.ColorBlack, tcell.ColorOrange},
		CrumbInactive: Pair{tcell.ColorBlack, tcell.ColorSlateGray},

		Section: tcell.ColorSteelBlue,
		Price:   tcell.ColorPaleGreen,
		Offer:   tcell.ColorDarkSeaGreen,
		Wish:    tcell.ColorIndianRed,
		Star:    tcell.ColorGold,

		Info:  tcell.ColorNavajoWhite,
		Warn:  tcell.ColorOrange,
		Error: tcell.ColorOrangeRed,
	}
}

// Tag returns the tview color tag for c, e.g. "[gold]".
func Tag(c tcell.Color) string {
	return "[" + colorName(c) + "]"
}
