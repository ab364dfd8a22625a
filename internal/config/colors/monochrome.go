package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		ColumnBorder:   "#585858",
		DropTarget:     "#FFFFFF",
		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		DraggedCard:    "#3A3A3A",

		// Priorities get lighter as they get less pressing
		PriorityCalm:     "#8A8A8A",
		PriorityAccent:   "#B2B2B2",
		PriorityWarning:  "#DADADA",
		PriorityCritical: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
