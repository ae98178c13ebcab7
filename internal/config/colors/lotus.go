package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		Draft:   palette.lotusGray3,
		Sent:    palette.lotusBlue4,
		Paid:    palette.lotusGreen,
		Overdue: palette.lotusRed,

		InfoFg:    palette.lotusBlue4,
		InfoBg:    palette.lotusWhite3,
		WarningFg: palette.lotusOrange,
		WarningBg: palette.lotusWhite3,
		ErrorFg:   palette.lotusRed,
		ErrorBg:   palette.lotusWhite3,
	}
}
