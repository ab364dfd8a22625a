package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Drag and drop
	PickUp     string `yaml:"pick_up"`
	Drop       string `yaml:"drop"`
	CancelDrag string `yaml:"cancel_drag"`

	// Tasks
	AddTask    string `yaml:"add_task"`
	DeleteTask string `yaml:"delete_task"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// AI
	ShowInsights string `yaml:"show_insights"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PickUp:     "space",
		Drop:       "enter",
		CancelDrag: "esc",

		AddTask:    "a",
		DeleteTask: "d",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		ShowInsights: "i",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.PickUp, d.PickUp)
	fill(&k.Drop, d.Drop)
	fill(&k.CancelDrag, d.CancelDrag)
	fill(&k.AddTask, d.AddTask)
	fill(&k.DeleteTask, d.DeleteTask)
	fill(&k.PrevColumn, d.PrevColumn)
	fill(&k.NextColumn, d.NextColumn)
	fill(&k.PrevTask, d.PrevTask)
	fill(&k.NextTask, d.NextTask)
	fill(&k.ShowInsights, d.ShowInsights)
	fill(&k.Refresh, d.Refresh)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
