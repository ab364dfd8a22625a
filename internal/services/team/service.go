// Package team exposes the read-only team roster tasks are assigned to
package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/nexus/internal/database"
	"github.com/thenoetrevino/nexus/internal/models"
)

// Service defines team roster operations
type Service interface {
	Members(ctx context.Context) ([]*models.User, error)
	Member(ctx context.Context, id string) (*models.User, error)

	// Directory maps user id to member for rendering assignees
	Directory(ctx context.Context) (map[string]*models.User, error)
}

type service struct {
	repo database.UserRepository
}

// NewService creates a new team service
func NewService(repo database.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Members(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	return users, nil
}

func (s *service) Member(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.ErrUserNotFound
	}
	return s.repo.GetUserByID(ctx, id)
}

func (s *service) Directory(ctx context.Context) (map[string]*models.User, error) {
	users, err := s.Members(ctx)
	if err != nil {
		return nil, err
	}
	dir := make(map[string]*models.User, len(users))
	for _, u := range users {
		dir[u.ID] = u
	}
	return dir, nil
}
