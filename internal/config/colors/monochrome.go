package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:   "#FFFFFF",
		AccentFg: "#000000",

		Background: "#121212",

		ColumnBorder:   "#585858",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		TabBackground:  "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ChipFg: "#000000",
		ChipBg: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",

		TagColors:     map[string]string{},
		ProjectColors: map[string]string{},
		PriorityColors: map[string]string{
			"high":   "#FFFFFF",
			"medium": "#A8A8A8",
			"low":    "#585858",
		},
	}
}
