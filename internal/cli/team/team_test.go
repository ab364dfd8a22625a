package team

import (
	"strings"
	"testing"

	testutilcli "github.com/thenoetrevino/nexus/internal/testutil/cli"
)

func TestTeamList(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.Join(strings.Fields(output), ","); got != "u1,u2,u3,u4" {
		t.Errorf("Expected roster order u1..u4, got %s", got)
	}

	output, err = testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	members := testutilcli.ParseJSON(t, output)["data"].([]any)
	first := members[0].(map[string]any)
	if first["id"] != "u1" || first["role"] == "" {
		t.Errorf("Unexpected first member: %v", first)
	}
}
