package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkline/pkg/ink"
	"inkline/pkg/inktypes"
)

func newInitializedThemeService(t *testing.T) *ThemeService {
	t.Helper()
	service := NewThemeService()
	require.NoError(t, service.Initialize())
	return service
}

func TestThemeService_BasicFunctionality(t *testing.T) {
	service := NewThemeService()

	err := service.Initialize()
	require.NoError(t, err)

	assert.Equal(t, "theme", service.Name())
	assert.True(t, service.initialized)
}

func TestThemeService_ComponentLogger(t *testing.T) {
	service := NewThemeService()

	require.NotNil(t, service.logger)
	assert.Equal(t, "Theme ", service.logger.GetPrefix())
}

func TestThemeService_ThemeManagement(t *testing.T) {
	service := newInitializedThemeService(t)

	themes := service.GetAvailableThemes()
	assert.Equal(t, []string{"dark", "default", "light", "mono", "plain"}, themes)

	defaultTheme, exists := service.GetTheme("default")
	assert.True(t, exists)
	assert.NotNil(t, defaultTheme)
	assert.Equal(t, "default", defaultTheme.Name)

	_, exists = service.GetTheme("nonexistent")
	assert.False(t, exists)
}

func TestThemeService_ResolvedStyles(t *testing.T) {
	service := newInitializedThemeService(t)

	theme, exists := service.GetTheme("default")
	require.True(t, exists)

	tests := []struct {
		element string
		text    string
		want    string
	}{
		{"success", "ok", "\x1b[32mok\x1b[0m"},
		{"error", "bad", "\x1b[31;1mbad\x1b[0m"},
		{"warning", "careful", "\x1b[33mcareful\x1b[0m"},
		{"info", "note", "\x1b[34mnote\x1b[0m"},
		{"label", "name", "\x1b[36mname\x1b[0m"},
		{"heading", "Title", "\x1b[97;1mTitle\x1b[0m"},
		{"highlight", "pick", "\x1b[7mpick\x1b[0m"},
		{"muted", "detail", "\x1b[90;2mdetail\x1b[0m"},
		{"accent", "flair", "\x1b[35mflair\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.element, func(t *testing.T) {
			assert.Equal(t, tt.want, theme.Style(tt.element).Render(tt.text))
		})
	}

	t.Run("unknown element renders unchanged", func(t *testing.T) {
		assert.Equal(t, "raw", theme.Style("banner").Render("raw"))
	})
}

func TestThemeService_PlainTheme(t *testing.T) {
	service := newInitializedThemeService(t)

	plain, exists := service.GetTheme("plain")
	require.True(t, exists)

	for _, element := range inktypes.Elements() {
		style := plain.Style(element)
		assert.True(t, style.IsZero(), "element %q should be unstyled", element)
		assert.Equal(t, "text", style.Render("text"))
	}
}

func TestThemeService_Inheritance(t *testing.T) {
	service := newInitializedThemeService(t)

	defaultTheme, exists := service.GetTheme("default")
	require.True(t, exists)
	dark, exists := service.GetTheme("dark")
	require.True(t, exists)
	light, exists := service.GetTheme("light")
	require.True(t, exists)
	mono, exists := service.GetTheme("mono")
	require.True(t, exists)

	t.Run("untouched elements are inherited from the parent", func(t *testing.T) {
		assert.True(t, dark.Success.Equal(defaultTheme.Success))
		assert.True(t, dark.Error.Equal(defaultTheme.Error))
		assert.True(t, dark.Highlight.Equal(defaultTheme.Highlight))
	})

	t.Run("child opinions layer over inherited attributes", func(t *testing.T) {
		// bright-white bold from default, truecolor and double underline from dark
		assert.Equal(t, "\x1b[38;2;232;232;255;1;21mTitle\x1b[0m", dark.Heading.Render("Title"))
		assert.Equal(t, "\x1b[30;1mTitle\x1b[0m", light.Heading.Render("Title"))
	})

	t.Run("reset removes an inherited effect", func(t *testing.T) {
		// default muted is gray and faint; dark replaces the color and
		// clears the faint
		assert.Equal(t, "\x1b[38;2;108;112;134mdetail\x1b[0m", dark.Muted.Render("detail"))
	})

	t.Run("reset removes an inherited color", func(t *testing.T) {
		attrs := mono.Error.Attributes()
		assert.True(t, attrs.Foreground.IsZero())
		assert.Equal(t, "\x1b[1;7mbad\x1b[0m", mono.Error.Render("bad"))
	})

	t.Run("clearing every inherited attribute yields the identity style", func(t *testing.T) {
		assert.True(t, mono.Info.IsZero())
		assert.Equal(t, "note", mono.Info.Render("note"))
	})

	t.Run("inverse survives when the child is silent about it", func(t *testing.T) {
		assert.True(t, mono.Highlight.Equal(defaultTheme.Highlight))
	})

	t.Run("replacing inverse with explicit colors", func(t *testing.T) {
		assert.Equal(t, "\x1b[30;103mpick\x1b[0m", light.Highlight.Render("pick"))
	})
}

func TestThemeService_GetThemeByName(t *testing.T) {
	service := newInitializedThemeService(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact name", "dark", "dark"},
		{"case insensitive", "DARK", "dark"},
		{"surrounding spaces", "  light  ", "light"},
		{"empty name means plain", "", "plain"},
		{"monochrome alias", "monochrome", "mono"},
		{"none alias", "none", "plain"},
		{"unknown falls back to plain", "solarized", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := service.GetThemeByName(tt.input)
			require.NotNil(t, theme)
			assert.Equal(t, tt.want, theme.Name)
		})
	}
}

func TestThemeService_ActiveTheme(t *testing.T) {
	service := newInitializedThemeService(t)

	assert.Equal(t, "default", service.ThemeName())
	assert.Equal(t, "\x1b[32mok\x1b[0m", service.Style(inktypes.ElementSuccess).Render("ok"))

	service.SetActiveTheme("mono")
	assert.Equal(t, "mono", service.ThemeName())
	assert.Equal(t, "\x1b[1mok\x1b[0m", service.Style(inktypes.ElementSuccess).Render("ok"))

	service.SetActiveTheme("no such theme")
	assert.Equal(t, "plain", service.ThemeName())
	assert.Equal(t, "ok", service.Style(inktypes.ElementSuccess).Render("ok"))
}

func TestThemeService_UninitializedFallbacks(t *testing.T) {
	service := NewThemeService()

	assert.Empty(t, service.GetAvailableThemes())

	_, exists := service.GetTheme("default")
	assert.False(t, exists)

	theme := service.GetThemeByName("dark")
	require.NotNil(t, theme)
	assert.Equal(t, "plain", theme.Name)
	assert.Equal(t, "text", theme.Style(inktypes.ElementError).Render("text"))
}

func TestThemeService_ResolveErrors(t *testing.T) {
	service := NewThemeService()

	t.Run("extends cycle is reported", func(t *testing.T) {
		specs := map[string]inktypes.ThemeSpec{
			"a": {Name: "a", Extends: "b"},
			"b": {Name: "b", Extends: "a"},
		}
		_, err := service.resolveTheme("a", specs, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("missing parent is reported", func(t *testing.T) {
		specs := map[string]inktypes.ThemeSpec{
			"child": {Name: "child", Extends: "ghost"},
		}
		_, err := service.resolveTheme("child", specs, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})
}

func TestBuildStyle_Validation(t *testing.T) {
	t.Run("valid specs resolve", func(t *testing.T) {
		style, err := buildStyle("sample", "heading", inktypes.StyleSpec{
			Foreground: "bright-white",
			Background: "#003366",
			Bold:       true,
			Underline:  "double",
		})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[97;48;2;0;51;102;1;21m", style.Prefix())
	})

	t.Run("reset keywords become clearing instructions", func(t *testing.T) {
		style, err := buildStyle("sample", "muted", inktypes.StyleSpec{
			Foreground: "reset",
			Faint:      "reset",
		})
		require.NoError(t, err)
		attrs := style.Attributes()
		assert.Equal(t, ink.ResetColor, attrs.Foreground)
		assert.Equal(t, ink.Reset, attrs.Faint)
		assert.Equal(t, "text", style.Render("text"))
	})

	tests := []struct {
		name    string
		spec    inktypes.StyleSpec
		field   string
		message string
	}{
		{
			name:    "unknown color name",
			spec:    inktypes.StyleSpec{Foreground: "crimsonish"},
			field:   "foreground",
			message: "unknown color",
		},
		{
			name:    "malformed hex color",
			spec:    inktypes.StyleSpec{Background: "#GG0000"},
			field:   "background",
			message: "invalid hex color",
		},
		{
			name:    "color must be a string",
			spec:    inktypes.StyleSpec{Foreground: 42},
			field:   "foreground",
			message: "must be a name or hex string",
		},
		{
			name:    "double outside underline",
			spec:    inktypes.StyleSpec{Bold: "double"},
			field:   "bold",
			message: "only valid for underline",
		},
		{
			name:    "unknown effect keyword",
			spec:    inktypes.StyleSpec{Italic: "sideways"},
			field:   "italic",
			message: "must be a boolean",
		},
		{
			name:    "effect must be a boolean or keyword",
			spec:    inktypes.StyleSpec{Blink: 3},
			field:   "blink",
			message: "must be a boolean",
		},
		{
			name:    "bold and faint cannot combine",
			spec:    inktypes.StyleSpec{Bold: true, Faint: true},
			field:   "effects",
			message: "mutually exclusive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildStyle("sample", "heading", tt.spec)
			require.Error(t, err)

			var specErr inktypes.SpecValidationError
			require.ErrorAs(t, err, &specErr)
			assert.Equal(t, "sample", specErr.Theme)
			assert.Equal(t, "heading", specErr.Element)
			assert.Equal(t, tt.field, specErr.Field)
			assert.Contains(t, specErr.Message, tt.message)
		})
	}
}
