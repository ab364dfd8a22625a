package colors

// Default returns the default color scheme (indigo theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#6366F1",

		// Board
		ColumnBorder:   "#475569",
		DropTarget:     "#C7D2FE",
		CardBorder:     "#585858",
		SelectedBorder: "#818CF8",
		DraggedCard:    "#4B5563",

		// Priorities
		PriorityCalm:     "#059669",
		PriorityAccent:   "#4F46E5",
		PriorityWarning:  "#EA580C",
		PriorityCritical: "#E11D48",

		// Text
		Title:  "#E2E8F0",
		Subtle: "#64748B",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#00AFFF",
		ErrorFg: "#FF5F5F",
	}
}
