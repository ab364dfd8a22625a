// Package cli runs cobra commands against an in-memory App.
// It is separate from testutil so service tests can import testutil without
// pulling in the CLI.
package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/nexus/internal/advisor"
	"github.com/thenoetrevino/nexus/internal/app"
	"github.com/thenoetrevino/nexus/internal/testutil"
)

// SetupCLITest creates the seeded in-memory DB and an App with no AI model
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	return SetupCLITestWithGenerator(t, nil)
}

// SetupCLITestWithGenerator is SetupCLITest with gen answering advisor calls
func SetupCLITestWithGenerator(t *testing.T, gen advisor.Generator) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db, app.WithGenerator(gen))
}
