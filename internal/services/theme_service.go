package services

import (
	"fmt"
	"sort"
	"strings"

	"inkline/internal/data/embedded"
	"inkline/internal/logger"
	"inkline/internal/output"
	"inkline/pkg/ink"
	"inkline/pkg/inktypes"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ThemeService provides theme management for Inkline styling. It resolves
// the embedded theme files into ready-to-render styles at construction,
// including parent themes named by extends, and tracks the active theme the
// output layer styles against.
type ThemeService struct {
	initialized bool
	themes      map[string]*Theme
	active      string
	logger      *log.Logger
}

// Theme is a fully resolved theme: one style per semantic element, with all
// inheritance already applied.
type Theme struct {
	Name        string
	Description string
	Extends     string

	Heading   ink.Style
	Label     ink.Style
	Success   ink.Style
	Error     ink.Style
	Warning   ink.Style
	Info      ink.Style
	Highlight ink.Style
	Muted     ink.Style
	Accent    ink.Style
}

// Style returns the style for a semantic element name. Unknown elements
// return the zero style, which renders text unchanged.
func (t *Theme) Style(element string) ink.Style {
	switch element {
	case inktypes.ElementHeading:
		return t.Heading
	case inktypes.ElementLabel:
		return t.Label
	case inktypes.ElementSuccess:
		return t.Success
	case inktypes.ElementError:
		return t.Error
	case inktypes.ElementWarning:
		return t.Warning
	case inktypes.ElementInfo:
		return t.Info
	case inktypes.ElementHighlight:
		return t.Highlight
	case inktypes.ElementMuted:
		return t.Muted
	case inktypes.ElementAccent:
		return t.Accent
	default:
		return ink.Style{}
	}
}

// NewThemeService creates a new ThemeService instance with themes resolved
// from the embedded YAML files.
func NewThemeService() *ThemeService {
	service := &ThemeService{
		initialized: false,
		themes:      make(map[string]*Theme),
		active:      "default",
		logger:      logger.NewStyledLogger("Theme"),
	}
	service.loadThemesFromYAML()
	return service
}

// Name returns the service name "theme" for registration.
func (t *ThemeService) Name() string {
	return "theme"
}

// Initialize sets up the ThemeService for operation.
func (t *ThemeService) Initialize() error {
	t.initialized = true
	logger.ServiceOperation("theme", "initialize", "themes", len(t.themes))
	return nil
}

// loadThemesFromYAML parses every embedded theme file, then resolves each
// theme against its parents. Parsing happens first so extends can name a
// theme regardless of load order.
func (t *ThemeService) loadThemesFromYAML() {
	themeFiles := map[string][]byte{
		"default": embedded.DefaultThemeData,
		"dark":    embedded.DarkThemeData,
		"light":   embedded.LightThemeData,
		"plain":   embedded.PlainThemeData,
		"mono":    embedded.MonoThemeData,
	}

	specs := make(map[string]inktypes.ThemeSpec)
	for name, data := range themeFiles {
		var file inktypes.ThemeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			t.logger.Error("Failed to parse theme", "theme", name, "error", err)
			continue
		}
		spec := file.ThemeSpec
		spec.Name = name
		specs[name] = spec
	}

	for name := range specs {
		theme, err := t.resolveTheme(name, specs, nil)
		if err != nil {
			t.logger.Error("Failed to resolve theme", "theme", name, "error", err)
			t.themes[name] = createFallbackTheme(name)
			continue
		}
		t.themes[name] = theme
		logger.ThemeResolution(name, theme.Extends, styledElementCount(theme))
	}

	// Ensure we always have a plain theme as fallback
	if _, exists := t.themes["plain"]; !exists {
		t.themes["plain"] = createFallbackTheme("plain")
	}
}

// resolveTheme resolves one theme spec into a Theme, resolving its parent
// chain first. The seen list guards against extends cycles.
func (t *ThemeService) resolveTheme(name string, specs map[string]inktypes.ThemeSpec, seen []string) (*Theme, error) {
	for _, visited := range seen {
		if visited == name {
			return nil, fmt.Errorf("theme inheritance cycle: %s", strings.Join(append(seen, name), " -> "))
		}
	}

	spec, exists := specs[name]
	if !exists {
		return nil, fmt.Errorf("theme %s not found", name)
	}

	var parent *Theme
	if spec.Extends != "" {
		resolved, err := t.resolveTheme(spec.Extends, specs, append(seen, name))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve parent of theme %s: %w", name, err)
		}
		parent = resolved
	}

	return composeTheme(spec, parent)
}

// composeTheme builds every element style from the spec and layers it over
// the parent's resolved style. Without a parent the layering base is the
// zero style, so clearing instructions in a root theme resolve to nothing.
func composeTheme(spec inktypes.ThemeSpec, parent *Theme) (*Theme, error) {
	theme := &Theme{
		Name:        spec.Name,
		Description: spec.Description,
		Extends:     spec.Extends,
	}

	elements := []struct {
		name string
		spec inktypes.StyleSpec
		dst  *ink.Style
	}{
		{inktypes.ElementHeading, spec.Elements.Heading, &theme.Heading},
		{inktypes.ElementLabel, spec.Elements.Label, &theme.Label},
		{inktypes.ElementSuccess, spec.Elements.Success, &theme.Success},
		{inktypes.ElementError, spec.Elements.Error, &theme.Error},
		{inktypes.ElementWarning, spec.Elements.Warning, &theme.Warning},
		{inktypes.ElementInfo, spec.Elements.Info, &theme.Info},
		{inktypes.ElementHighlight, spec.Elements.Highlight, &theme.Highlight},
		{inktypes.ElementMuted, spec.Elements.Muted, &theme.Muted},
		{inktypes.ElementAccent, spec.Elements.Accent, &theme.Accent},
	}

	for _, element := range elements {
		overlay, err := buildStyle(spec.Name, element.name, element.spec)
		if err != nil {
			return nil, err
		}

		base := ink.Style{}
		if parent != nil {
			base = parent.Style(element.name)
		}
		*element.dst = base.Merge(overlay)
	}

	return theme, nil
}

// buildStyle converts one raw StyleSpec into an ink style, reporting schema
// violations as SpecValidationError.
func buildStyle(theme, element string, spec inktypes.StyleSpec) (ink.Style, error) {
	var attrs ink.Attributes
	var err error

	if attrs.Foreground, err = colorField(theme, element, "foreground", spec.Foreground); err != nil {
		return ink.Style{}, err
	}
	if attrs.Background, err = colorField(theme, element, "background", spec.Background); err != nil {
		return ink.Style{}, err
	}

	effects := []struct {
		name        string
		raw         interface{}
		dst         *ink.Setting
		allowDouble bool
	}{
		{"bold", spec.Bold, &attrs.Bold, false},
		{"faint", spec.Faint, &attrs.Faint, false},
		{"italic", spec.Italic, &attrs.Italic, false},
		{"underline", spec.Underline, &attrs.Underline, true},
		{"overline", spec.Overline, &attrs.Overline, false},
		{"blink", spec.Blink, &attrs.Blink, false},
		{"inverse", spec.Inverse, &attrs.Inverse, false},
		{"conceal", spec.Conceal, &attrs.Conceal, false},
	}
	for _, effect := range effects {
		setting, err := settingField(theme, element, effect.name, effect.raw, effect.allowDouble)
		if err != nil {
			return ink.Style{}, err
		}
		*effect.dst = setting
	}

	style, err := ink.New(attrs)
	if err != nil {
		return ink.Style{}, inktypes.SpecValidationError{
			Theme:   theme,
			Element: element,
			Field:   "effects",
			Value:   "bold/faint",
			Message: err.Error(),
		}
	}
	return style, nil
}

// colorField resolves one color slot of a StyleSpec.
func colorField(theme, element, field string, raw interface{}) (ink.Color, error) {
	if raw == nil {
		return ink.Color{}, nil
	}

	value, ok := raw.(string)
	if !ok {
		return ink.Color{}, inktypes.SpecValidationError{
			Theme:   theme,
			Element: element,
			Field:   field,
			Value:   fmt.Sprintf("%v", raw),
			Message: "color must be a name or hex string",
		}
	}

	color, err := ink.ParseColor(value)
	if err != nil {
		return ink.Color{}, inktypes.SpecValidationError{
			Theme:   theme,
			Element: element,
			Field:   field,
			Value:   value,
			Message: err.Error(),
		}
	}
	return color, nil
}

// settingField resolves one effect slot of a StyleSpec. YAML booleans map to
// On/Off; the strings "reset" and (for underline) "double" select the
// sentinel values. String booleans are accepted because YAML 1.1 documents
// write on/off and yes/no.
func settingField(theme, element, field string, raw interface{}, allowDouble bool) (ink.Setting, error) {
	fail := func(value, message string) (ink.Setting, error) {
		return ink.Unset, inktypes.SpecValidationError{
			Theme:   theme,
			Element: element,
			Field:   field,
			Value:   value,
			Message: message,
		}
	}

	switch value := raw.(type) {
	case nil:
		return ink.Unset, nil
	case bool:
		if value {
			return ink.On, nil
		}
		return ink.Off, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "on", "yes":
			return ink.On, nil
		case "false", "off", "no":
			return ink.Off, nil
		case "reset":
			return ink.Reset, nil
		case "double":
			if allowDouble {
				return ink.Double, nil
			}
			return fail(value, "double is only valid for underline")
		default:
			return fail(value, "must be a boolean, \"double\", or \"reset\"")
		}
	default:
		return fail(fmt.Sprintf("%v", raw), "must be a boolean, \"double\", or \"reset\"")
	}
}

// createFallbackTheme creates an unstyled theme for fallback scenarios.
func createFallbackTheme(name string) *Theme {
	return &Theme{Name: name}
}

// styledElementCount counts the elements a resolved theme actually styles.
func styledElementCount(theme *Theme) int {
	count := 0
	for _, element := range inktypes.Elements() {
		if !theme.Style(element).IsZero() {
			count++
		}
	}
	return count
}

// GetAvailableThemes returns the sorted list of available theme names.
func (t *ThemeService) GetAvailableThemes() []string {
	if !t.initialized {
		return []string{}
	}

	themes := make([]string, 0, len(t.themes))
	for name := range t.themes {
		themes = append(themes, name)
	}
	sort.Strings(themes)
	return themes
}

// GetTheme returns a specific theme by name.
func (t *ThemeService) GetTheme(name string) (*Theme, bool) {
	if !t.initialized {
		return nil, false
	}

	theme, exists := t.themes[name]
	return theme, exists
}

// themeAliases maps accepted alternate spellings to canonical theme names.
var themeAliases = map[string]string{
	"monochrome": "mono",
	"none":       "plain",
}

// GetThemeByName retrieves a theme by name with support for aliases and
// case-insensitive matching. Always returns a valid theme object, never
// fails. For unknown names, logs and returns the plain theme.
func (t *ThemeService) GetThemeByName(name string) *Theme {
	if !t.initialized {
		return t.GetDefaultTheme()
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = "plain"
	}
	if canonical, ok := themeAliases[normalized]; ok {
		normalized = canonical
	}

	if theme, exists := t.themes[normalized]; exists {
		return theme
	}

	t.logger.Debug("Unknown theme requested, using plain theme", "theme", name, "available", t.GetAvailableThemes())
	return t.themes["plain"]
}

// GetDefaultTheme returns the plain theme (no styling) for fallback scenarios.
func (t *ThemeService) GetDefaultTheme() *Theme {
	if !t.initialized {
		return createFallbackTheme("plain")
	}
	return t.themes["plain"]
}

// SetActiveTheme switches the theme used for semantic styling. Unknown
// names fall back to the plain theme.
func (t *ThemeService) SetActiveTheme(name string) {
	t.active = t.GetThemeByName(name).Name
	logger.ServiceOperation("theme", "set-active", "theme", t.active)
}

// ActiveTheme returns the theme semantic styling currently resolves against.
func (t *ThemeService) ActiveTheme() *Theme {
	return t.GetThemeByName(t.active)
}

// Style implements inktypes.StyleResolver against the active theme.
func (t *ThemeService) Style(element string) ink.Style {
	return t.ActiveTheme().Style(element)
}

// ThemeName implements inktypes.StyleResolver.
func (t *ThemeService) ThemeName() string {
	return t.ActiveTheme().Name
}

// GetStyle implements output.StyleProvider. The semantic type names used by
// the printer are exactly the theme element names, and ink.Style satisfies
// output.TextStyle directly.
func (t *ThemeService) GetStyle(semantic string) output.TextStyle {
	return t.Style(semantic)
}

// IsAvailable implements output.StyleProvider.
func (t *ThemeService) IsAvailable() bool {
	return t.initialized
}

// GetThemeType implements output.StyleProvider for markdown rendering.
func (t *ThemeService) GetThemeType() string {
	switch t.ActiveTheme().Name {
	case "dark":
		return "dark"
	case "light":
		return "light"
	case "plain", "mono":
		return "notty"
	default:
		return "auto"
	}
}

var _ inktypes.Service = (*ThemeService)(nil)
var _ inktypes.StyleResolver = (*ThemeService)(nil)
var _ output.StyleProvider = (*ThemeService)(nil)

func init() {
	// Register the ThemeService with the global registry
	if err := GlobalRegistry.RegisterService(NewThemeService()); err != nil {
		panic(fmt.Sprintf("failed to register theme service: %v", err))
	}
}
