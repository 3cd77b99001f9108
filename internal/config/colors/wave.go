package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent:   palette.oniViolet,
		AccentFg: palette.sumiInk1,

		Background: palette.sumiInk1,

		// UI element colors
		ColumnBorder:   palette.sumiInk6,
		CardBorder:     palette.sumiInk4,
		CardBackground: palette.sumiInk3,
		SelectedBorder: palette.waveAqua2,
		TabBackground:  palette.sumiInk4,

		// Text colors
		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		ChipFg: palette.sumiInk1,
		ChipBg: palette.fujiGray,

		// Notification colors
		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		TagColors: map[string]string{
			"dev":      palette.carpYellow,
			"research": palette.springGreen,
			"strategy": palette.surimiOrange,
			"design":   palette.sakuraPink,
		},
		ProjectColors: map[string]string{},
		PriorityColors: map[string]string{
			"high":   palette.peachRed,
			"medium": palette.autumnYellow,
			"low":    palette.sumiInk6,
		},
	}
}
