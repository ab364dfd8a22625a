package database

import (
	"context"

	"github.com/thenoetrevino/nexus/internal/models"
)

// UserRepository defines read operations for the team roster.
type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
