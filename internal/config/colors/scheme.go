package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Board colors
	ColumnBorder   string `yaml:"column_border"`
	DropTarget     string `yaml:"drop_target"` // Border of the column a card hovers over
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	DraggedCard    string `yaml:"dragged_card"` // Dimmed text of the card being moved

	// Priority badges, one per treatment
	PriorityCalm     string `yaml:"priority_calm"`
	PriorityAccent   string `yaml:"priority_accent"`
	PriorityWarning  string `yaml:"priority_warning"`
	PriorityCritical string `yaml:"priority_critical"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors
	InfoFg  string `yaml:"info_fg"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.MergeFrom(*preset, true)
}

// MergeFrom copies colors from other. With onlyEmpty set, colors already
// present in c are kept.
func (c *ColorScheme) MergeFrom(other ColorScheme, onlyEmpty bool) {
	merge := func(dst *string, src string) {
		if src == "" || (onlyEmpty && *dst != "") {
			return
		}
		*dst = src
	}

	merge(&c.Accent, other.Accent)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.DropTarget, other.DropTarget)
	merge(&c.CardBorder, other.CardBorder)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.DraggedCard, other.DraggedCard)
	merge(&c.PriorityCalm, other.PriorityCalm)
	merge(&c.PriorityAccent, other.PriorityAccent)
	merge(&c.PriorityWarning, other.PriorityWarning)
	merge(&c.PriorityCritical, other.PriorityCritical)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.ErrorFg, other.ErrorFg)
}
