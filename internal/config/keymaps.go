package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Booking page
	PrevOption   string `yaml:"prev_option" toml:"prev_option"`
	NextOption   string `yaml:"next_option" toml:"next_option"`
	SelectOption string `yaml:"select_option" toml:"select_option"`
	PickDate     string `yaml:"pick_date" toml:"pick_date"`
	Next         string `yaml:"next" toml:"next"`
	Back         string `yaml:"back" toml:"back"`

	// Date picker
	PrevColumn string `yaml:"prev_column" toml:"prev_column"`
	NextColumn string `yaml:"next_column" toml:"next_column"`
	ScrollUp   string `yaml:"scroll_up" toml:"scroll_up"`
	ScrollDown string `yaml:"scroll_down" toml:"scroll_down"`
	Confirm    string `yaml:"confirm" toml:"confirm"`
	Cancel     string `yaml:"cancel" toml:"cancel"`

	// Other
	ShowHelp string `yaml:"show_help" toml:"show_help"`
	Quit     string `yaml:"quit" toml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Booking page
		PrevOption:   "h",
		NextOption:   "l",
		SelectOption: "space",
		PickDate:     "d",
		Next:         "n",
		Back:         "b",

		// Date picker
		PrevColumn: "h",
		NextColumn: "l",
		ScrollUp:   "k",
		ScrollDown: "j",
		Confirm:    "enter",
		Cancel:     "esc",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.PrevOption, defaults.PrevOption)
	fill(&k.NextOption, defaults.NextOption)
	fill(&k.SelectOption, defaults.SelectOption)
	fill(&k.PickDate, defaults.PickDate)
	fill(&k.Next, defaults.Next)
	fill(&k.Back, defaults.Back)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.ScrollUp, defaults.ScrollUp)
	fill(&k.ScrollDown, defaults.ScrollDown)
	fill(&k.Confirm, defaults.Confirm)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
