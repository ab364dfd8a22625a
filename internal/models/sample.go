package models

// CurrentUserID is the signed-in team member of the sample workspace
const CurrentUserID = "u1"

// SampleTeam returns the team members the board starts with
func SampleTeam() []*User {
	return []*User{
		{ID: "u1", Name: "Alex Rivera", Email: "alex@nexus.io", Avatar: "https://picsum.photos/seed/alex/200", Role: RoleAdmin, Plan: PlanPro},
		{ID: "u2", Name: "Jordan Smith", Email: "jordan@nexus.io", Avatar: "https://picsum.photos/seed/jordan/200", Role: RoleMember, Plan: PlanPro},
		{ID: "u3", Name: "Sarah Chen", Email: "sarah@nexus.io", Avatar: "https://picsum.photos/seed/sarah/200", Role: RoleMember, Plan: PlanPro},
		{ID: "u4", Name: "Michael Bell", Email: "mike@nexus.io", Avatar: "https://picsum.photos/seed/mike/200", Role: RoleViewer, Plan: PlanFree},
	}
}

// SampleTasks returns the tasks the board starts with, one per column
func SampleTasks() []*Task {
	return []*Task{
		{
			ID:          "t1",
			Title:       "Implement OAuth Login",
			Description: "Integrate Google and GitHub OAuth providers for user authentication.",
			Status:      StatusTodo,
			Priority:    PriorityHigh,
			AssigneeID:  "u1",
			DueDate:     "2024-05-20",
			Tags:        []string{"Auth", "Backend"},
		},
		{
			ID:          "t2",
			Title:       "Mobile Responsive Audit",
			Description: "Review all dashboard components on viewport sizes below 768px.",
			Status:      StatusInProgress,
			Priority:    PriorityMedium,
			AssigneeID:  "u2",
			DueDate:     "2024-05-18",
			Tags:        []string{"UI/UX", "Mobile"},
		},
		{
			ID:          "t3",
			Title:       "Database Index Optimization",
			Description: "Analyze slow queries and add indexes to task and project tables.",
			Status:      StatusReview,
			Priority:    PriorityUrgent,
			AssigneeID:  "u1",
			DueDate:     "2024-05-15",
			Tags:        []string{"Infra", "DB"},
		},
		{
			ID:          "t4",
			Title:       "Write Documentation",
			Description: "Create API documentation for the new collaboration endpoints.",
			Status:      StatusDone,
			Priority:    PriorityLow,
			AssigneeID:  "u3",
			DueDate:     "2024-05-10",
			Tags:        []string{"Docs"},
		},
	}
}
