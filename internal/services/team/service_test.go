package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/nexus/internal/database"
	"github.com/thenoetrevino/nexus/internal/models"
)

func setupTestService(t *testing.T) Service {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(database.NewRepository(db))
}

func TestMembers(t *testing.T) {
	svc := setupTestService(t)

	members, err := svc.Members(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SampleTeam(), members)
}

func TestMember(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	u, err := svc.Member(ctx, models.CurrentUserID)
	require.NoError(t, err)
	assert.Equal(t, "Alex Rivera", u.Name)
	assert.Equal(t, models.RoleAdmin, u.Role)

	_, err = svc.Member(ctx, "")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	_, err = svc.Member(ctx, "u42")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestDirectory(t *testing.T) {
	svc := setupTestService(t)

	dir, err := svc.Directory(context.Background())
	require.NoError(t, err)
	require.Len(t, dir, 4)
	assert.Equal(t, "Sarah Chen", dir["u3"].Name)
}
