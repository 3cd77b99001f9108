package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary accent color
		Accent:   palette.dragonViolet,
		AccentFg: palette.dragonBlack1,

		Background: palette.dragonBlack1,

		// UI element colors
		ColumnBorder:   palette.dragonBlack6,
		CardBorder:     palette.dragonBlack4,
		CardBackground: palette.dragonBlack3,
		SelectedBorder: palette.dragonAqua,
		TabBackground:  palette.dragonBlack4,

		// Text colors
		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		ChipFg: palette.dragonBlack1,
		ChipBg: palette.dragonAsh,

		// Notification colors
		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		TagColors: map[string]string{
			"dev":      palette.dragonYellow,
			"research": palette.dragonGreen2,
			"strategy": palette.dragonOrange,
			"design":   palette.dragonPink,
		},
		ProjectColors: map[string]string{},
		PriorityColors: map[string]string{
			"high":   palette.dragonRed,
			"medium": palette.dragonYellow,
			"low":    palette.dragonBlack6,
		},
	}
}
