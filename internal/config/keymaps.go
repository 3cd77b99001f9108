package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Filters
	NextFilter  string `yaml:"next_filter"`
	PrevFilter  string `yaml:"prev_filter"`
	ClearFilter string `yaml:"clear_filter"`

	// Tasks
	ToggleExpand  string `yaml:"toggle_expand"`
	EditTask      string `yaml:"edit_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Filters
		NextFilter:  "tab",
		PrevFilter:  "shift+tab",
		ClearFilter: "0",

		// Tasks
		ToggleExpand:  "space",
		EditTask:      "e",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",

		// Other
		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.NextFilter, defaults.NextFilter)
	fill(&k.PrevFilter, defaults.PrevFilter)
	fill(&k.ClearFilter, defaults.ClearFilter)
	fill(&k.ToggleExpand, defaults.ToggleExpand)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.Reload, defaults.Reload)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
