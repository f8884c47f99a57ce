package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/models"
	clitest "github.com/thenoetrevino/todo/internal/testutil/cli"
)

func TestThemeGet_DefaultsToDark(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	out, _, err := clitest.ExecuteCLICommand(t, app, GetCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestThemeSet(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	ctx := context.Background()

	out, _, err := clitest.ExecuteCLICommand(t, app, SetCmd(), []string{"Light", "--json"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"theme":"light"}}`, out)
	assert.Equal(t, models.ThemeLight, app.TaskService.GetThemePreference(ctx))

	out, _, err = clitest.ExecuteCLICommand(t, app, GetCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, out, "light")
}

func TestThemeSet_Invalid(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	_, stderr, err := clitest.ExecuteCLICommand(t, app, SetCmd(), []string{"sepia"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
	assert.Contains(t, stderr, "sepia")

	_, _, err = clitest.ExecuteCLICommand(t, app, SetCmd(), []string{})
	assert.Error(t, err)
}

func TestThemeToggle(t *testing.T) {
	kv, app := clitest.SetupCLITest(t)

	out, _, err := clitest.ExecuteCLICommand(t, app, ToggleCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, _, err = clitest.ExecuteCLICommand(t, app, ToggleCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	kv.SetErr = errors.New("disk full")
	_, _, err = clitest.ExecuteCLICommand(t, app, ToggleCmd(), []string{})
	assert.Equal(t, cli.ExitError, cli.ExitCodeFor(err))
}
