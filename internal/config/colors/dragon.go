package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		Draft:   palette.dragonAsh,
		Sent:    palette.dragonBlue2,
		Paid:    palette.dragonGreen2,
		Overdue: palette.dragonRed,

		InfoFg:    palette.dragonBlue2,
		InfoBg:    palette.dragonBlack3,
		WarningFg: palette.dragonYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,
	}
}
