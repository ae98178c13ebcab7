package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		Draft:   "#808080",
		Sent:    "#D0D0D0",
		Paid:    "#FFFFFF",
		Overdue: "#FFFFFF",

		InfoFg:    "#000000",
		InfoBg:    "#D0D0D0",
		WarningFg: "#000000",
		WarningBg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#303030",
	}
}
