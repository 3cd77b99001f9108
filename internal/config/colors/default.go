package colors

// Default returns the default color scheme (near-black with amber accents)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent:   "#F59E0B",
		AccentFg: "#000000",

		Background: "#0A0A0A",

		// UI elements
		ColumnBorder:   "#1F2937",
		CardBorder:     "#1F2937",
		CardBackground: "#111111",
		SelectedBorder: "#4B5563",
		TabBackground:  "#1F2937",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#6B7280",
		Normal: "#E5E7EB",

		ChipFg: "#FFFFFF",
		ChipBg: "#4B5563",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		TagColors: map[string]string{
			"dev":      "#F59E0B",
			"research": "#10B981",
			"strategy": "#F59E0B",
			"design":   "#EC4899",
		},
		ProjectColors: map[string]string{},
		PriorityColors: map[string]string{
			"high":   "#EF4444",
			"medium": "#F59E0B",
			"low":    "#4B5563",
		},
	}
}
