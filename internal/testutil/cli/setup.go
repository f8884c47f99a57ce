package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// SetupCLITest creates an in-memory store and returns both the store and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*testutil.MemoryKV, *app.App) {
	t.Helper()
	kv := testutil.NewMemoryKV()
	appInstance := app.New(kv)
	t.Cleanup(func() { _ = appInstance.Close() })
	return kv, appInstance
}

// SetupCLITestSQLite is SetupCLITest over an in-memory SQLite database
func SetupCLITestSQLite(t *testing.T) *app.App {
	t.Helper()
	appInstance := app.New(testutil.SetupTestRepository(t))
	t.Cleanup(func() { _ = appInstance.Close() })
	return appInstance
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the command context so commands never open
// the user's real store. Returns stdout and stderr separately.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin content
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := cli.WithApp(context.Background(), testApp)
	ctx = cli.WithConfig(ctx, config.Default())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(bytes.NewBufferString(stdin))
	testutil.SetupCobraCommand(cmd, args)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
