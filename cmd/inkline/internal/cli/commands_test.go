package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkline/internal/services"
	"inkline/internal/testutils"
)

// runCommand executes the inkline CLI with the given arguments and returns
// captured stdout. The active theme is restored afterwards so --theme runs
// do not leak into other tests through the shared registry.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() {
		if themeService, err := services.GetGlobalThemeService(); err == nil && themeService.IsAvailable() {
			themeService.SetActiveTheme("default")
		}
	})

	app := NewApp()
	rootCmd := app.CreateRootCommand()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderDirectStyle(t *testing.T) {
	out, err := runCommand(t, "", "render", "hi", "--fg", "red", "--bold", "on", "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31;1mhi\x1b[0m\n", out)
}

func TestRenderGolden(t *testing.T) {
	out, err := runCommand(t, "", "render", "hi", "--fg", "red", "--bold", "on", "--color", "always")
	require.NoError(t, err)
	testutils.AssertGolden(t, "render_red_bold", out)
}

func TestRenderColorNever(t *testing.T) {
	out, err := runCommand(t, "", "render", "hi", "--fg", "red", "--bold", "on", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestRenderHexColor(t *testing.T) {
	out, err := runCommand(t, "", "render", "x", "--fg", "#FF0000", "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;2;255;0;0mx\x1b[0m\n", out)
}

func TestRenderDoubleUnderline(t *testing.T) {
	out, err := runCommand(t, "", "render", "x", "--underline", "double", "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[21mx\x1b[0m\n", out)
}

func TestRenderNoStyleIsIdentity(t *testing.T) {
	out, err := runCommand(t, "", "render", "bare", "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, "bare\n", out)
}

func TestRenderFromStdin(t *testing.T) {
	out, err := runCommand(t, "piped\n", "render", "--fg", "green", "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32mpiped\x1b[0m\n", out)
}

func TestRenderElementBase(t *testing.T) {
	// The default theme's error element is red and bold
	out, err := runCommand(t, "", "render", "hi", "--element", "error", "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31;1mhi\x1b[0m\n", out)
}

func TestRenderElementFlagOverride(t *testing.T) {
	// Flags layer over the element style, so bold can be switched off
	out, err := runCommand(t, "", "render", "hi", "--element", "error", "--bold", "off", "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mhi\x1b[0m\n", out)
}

func TestRenderBoldFaintConflict(t *testing.T) {
	_, err := runCommand(t, "", "render", "hi", "--bold", "on", "--faint", "on")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRenderInvalidEffectValue(t *testing.T) {
	_, err := runCommand(t, "", "render", "hi", "--bold", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--bold")
	assert.Contains(t, err.Error(), "sideways")
}

func TestRenderDoubleOnNonUnderline(t *testing.T) {
	_, err := runCommand(t, "", "render", "hi", "--italic", "double")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only valid for underline")
}

func TestRenderUnknownColor(t *testing.T) {
	_, err := runCommand(t, "", "render", "hi", "--fg", "chartreuse-ish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--fg")
	assert.Contains(t, err.Error(), "unknown color")
}

func TestThemesListsEmbeddedThemes(t *testing.T) {
	out, err := runCommand(t, "", "themes")
	require.NoError(t, err)

	for _, name := range []string{"default", "dark", "light", "plain", "mono"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "extends default")
}

func TestThemesMarksActiveTheme(t *testing.T) {
	out, err := runCommand(t, "", "themes", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "* dark")
}

func TestThemeSelectionDoesNotPersist(t *testing.T) {
	t.Run("select dark", func(t *testing.T) {
		out, err := runCommand(t, "", "themes", "--theme", "dark")
		require.NoError(t, err)
		assert.Contains(t, out, "* dark")
	})

	t.Run("later runs see the default again", func(t *testing.T) {
		out, err := runCommand(t, "", "themes")
		require.NoError(t, err)
		assert.Contains(t, out, "* default")
		assert.NotContains(t, out, "* dark")
	})
}

func TestSwatchShowsThemesAndPalette(t *testing.T) {
	out, err := runCommand(t, "", "swatch", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Theme: default")
	assert.Contains(t, out, "Theme: dark (extends default)")
	assert.Contains(t, out, "Palette:")
	assert.Contains(t, out, "bright-magenta")
	assert.NotContains(t, out, "\x1b[", "swatch must be escape-free with --color never")
}

func TestSwatchStyledEmitsEscapes(t *testing.T) {
	out, err := runCommand(t, "", "swatch", "--color", "always")
	require.NoError(t, err)

	// Red palette entry rendered in red
	assert.Contains(t, out, "\x1b[31mred\x1b[0m")

	// Section titles go through the printer's heading semantics, so the
	// active theme's heading style (default: bright-white bold) frames them
	assert.Contains(t, out, "\x1b[97;1mPalette:\x1b[0m")
	assert.Contains(t, out, "\x1b[97;1mTheme: default\x1b[0m")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Inkline v")

	out, err = runCommand(t, "", "version", "--detailed")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version:")
}
