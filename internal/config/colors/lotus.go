package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		// Primary accent color
		Accent:   palette.lotusViolet4,
		AccentFg: palette.lotusWhite3,

		Background: palette.lotusWhite0,

		// UI element colors
		ColumnBorder:   palette.lotusViolet1,
		CardBorder:     palette.lotusWhite4,
		CardBackground: palette.lotusWhite3,
		SelectedBorder: palette.lotusAqua,
		TabBackground:  palette.lotusBlue1,

		// Text colors
		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		ChipFg: palette.lotusWhite3,
		ChipBg: palette.lotusGray3,

		// Notification colors
		InfoFg:    palette.lotusTeal3,
		InfoBg:    palette.lotusBlue2,
		WarningFg: palette.lotusOrange2,
		WarningBg: palette.lotusYellow4,
		ErrorFg:   palette.lotusRed3,
		ErrorBg:   palette.lotusRed4,

		TagColors: map[string]string{
			"dev":      palette.lotusYellow3,
			"research": palette.lotusGreen,
			"strategy": palette.lotusOrange2,
			"design":   palette.lotusPink,
		},
		ProjectColors: map[string]string{},
		PriorityColors: map[string]string{
			"high":   palette.lotusRed,
			"medium": palette.lotusYellow3,
			"low":    palette.lotusViolet1,
		},
	}
}
