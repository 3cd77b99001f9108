package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the selected filter tab, capacity, highlights)
	Accent   string `yaml:"accent"`
	AccentFg string `yaml:"accent_fg"` // text drawn on top of the accent

	Background string `yaml:"background"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	TabBackground  string `yaml:"tab_background"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Chip style for tags missing from TagColors
	ChipFg string `yaml:"chip_fg"`
	ChipBg string `yaml:"chip_bg"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Lookup tables keyed by tag, project and priority name
	TagColors      map[string]string `yaml:"tag_colors"`
	ProjectColors  map[string]string `yaml:"project_colors"`
	PriorityColors map[string]string `yaml:"priority_colors"`
}

// Presets lists the built-in scheme names
var Presets = []string{"default", "monochrome", "wave", "dragon", "lotus"}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.AccentFg, preset.AccentFg)
	fill(&c.Background, preset.Background)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.CardBackground, preset.CardBackground)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.TabBackground, preset.TabBackground)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.ChipFg, preset.ChipFg)
	fill(&c.ChipBg, preset.ChipBg)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)

	c.TagColors = mergeMap(c.TagColors, preset.TagColors)
	c.ProjectColors = mergeMap(c.ProjectColors, preset.ProjectColors)
	c.PriorityColors = mergeMap(c.PriorityColors, preset.PriorityColors)
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&c.Preset, other.Preset)
	set(&c.Accent, other.Accent)
	set(&c.AccentFg, other.AccentFg)
	set(&c.Background, other.Background)
	set(&c.ColumnBorder, other.ColumnBorder)
	set(&c.CardBorder, other.CardBorder)
	set(&c.CardBackground, other.CardBackground)
	set(&c.SelectedBorder, other.SelectedBorder)
	set(&c.TabBackground, other.TabBackground)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.ChipFg, other.ChipFg)
	set(&c.ChipBg, other.ChipBg)
	set(&c.InfoFg, other.InfoFg)
	set(&c.InfoBg, other.InfoBg)
	set(&c.WarningFg, other.WarningFg)
	set(&c.WarningBg, other.WarningBg)
	set(&c.ErrorFg, other.ErrorFg)
	set(&c.ErrorBg, other.ErrorBg)

	c.TagColors = overrideMap(c.TagColors, other.TagColors)
	c.ProjectColors = overrideMap(c.ProjectColors, other.ProjectColors)
	c.PriorityColors = overrideMap(c.PriorityColors, other.PriorityColors)
}

// mergeMap adds the entries of defaults that custom does not set
func mergeMap(custom, defaults map[string]string) map[string]string {
	out := make(map[string]string, len(custom)+len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range custom {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func overrideMap(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	return mergeMap(override, base)
}
