package models

// Role is a team member's permission level
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
	RoleViewer Role = "Viewer"
)

// Plan is the subscription tier of a team member
type Plan string

const (
	PlanFree       Plan = "Free"
	PlanPro        Plan = "Pro"
	PlanEnterprise Plan = "Enterprise"
)

// User is a team member that tasks can be assigned to
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   Role   `json:"role"`
	Plan   Plan   `json:"plan"`
}

// GetID satisfies the quiet-mode output contract of the CLI
func (u *User) GetID() string {
	return u.ID
}
