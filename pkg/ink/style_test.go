package ink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew tests style construction and validation.
func TestNew(t *testing.T) {
	t.Run("zero attributes produce the identity style", func(t *testing.T) {
		s, err := New(Attributes{})
		require.NoError(t, err)
		assert.True(t, s.IsZero())
		assert.Equal(t, "", s.Prefix())
		assert.Equal(t, Style{}, s)
	})

	t.Run("bold and faint together are rejected", func(t *testing.T) {
		_, err := New(Attributes{Bold: On, Faint: On})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMutuallyExclusiveAttributes)
	})

	t.Run("bold with faint off is allowed", func(t *testing.T) {
		s, err := New(Attributes{Bold: On, Faint: Off})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[1m", s.Prefix())
	})

	t.Run("reset values are accepted and render nothing", func(t *testing.T) {
		s, err := New(Attributes{Foreground: ResetColor, Bold: Reset})
		require.NoError(t, err)
		assert.Equal(t, "", s.Prefix())
		assert.Equal(t, "text", s.Render("text"))
	})

	t.Run("double is rejected outside underline", func(t *testing.T) {
		_, err := New(Attributes{Blink: Double})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAttribute)
	})

	t.Run("out of range setting is rejected", func(t *testing.T) {
		_, err := New(Attributes{Underline: Setting(42)})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAttribute)
	})

	t.Run("attributes round-trip through the style", func(t *testing.T) {
		attrs := Attributes{Foreground: Cyan, Underline: Double, Inverse: On}
		s, err := New(attrs)
		require.NoError(t, err)
		assert.Equal(t, attrs, s.Attributes())
	})
}

// TestRender tests escape framing around rendered text.
func TestRender(t *testing.T) {
	t.Run("identity style returns text byte for byte", func(t *testing.T) {
		var s Style
		assert.Equal(t, "plain", s.Render("plain"))
		assert.NotContains(t, s.Render("plain"), "\x1b")
	})

	t.Run("red foreground", func(t *testing.T) {
		s, err := New(Attributes{Foreground: Red})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[31mhi\x1b[0m", s.Render("hi"))
	})

	t.Run("blue background", func(t *testing.T) {
		s, err := New(Attributes{Background: Blue})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[44mhi\x1b[0m", s.Render("hi"))
	})

	t.Run("foreground background and bold combine", func(t *testing.T) {
		s, err := New(Attributes{Foreground: Green, Background: Yellow, Bold: On})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[32;43;1mx\x1b[0m", s.Render("x"))
	})

	t.Run("truecolor foreground from hex", func(t *testing.T) {
		fg, err := ParseHex("#FF0000")
		require.NoError(t, err)
		s, err := New(Attributes{Foreground: fg})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[38;2;255;0;0mx\x1b[0m", s.Render("x"))
	})

	t.Run("styled text is always prefix text reset", func(t *testing.T) {
		s, err := New(Attributes{Foreground: Magenta, Italic: On})
		require.NoError(t, err)
		out := s.Render("body")
		assert.True(t, strings.HasPrefix(out, s.Prefix()))
		assert.True(t, strings.HasSuffix(out, ResetSequence))
		assert.Equal(t, "body", strings.TrimSuffix(strings.TrimPrefix(out, s.Prefix()), ResetSequence))
	})

	t.Run("empty text still gets framed", func(t *testing.T) {
		s, err := New(Attributes{Foreground: Red})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[31m\x1b[0m", s.Render(""))
	})

	t.Run("reset sequence is the fixed zero code", func(t *testing.T) {
		assert.Equal(t, "\x1b[0m", ResetSequence)
	})
}

// TestStyleComparison tests Equal, comparability, and the debug form.
func TestStyleComparison(t *testing.T) {
	t.Run("styles with the same attributes are equal", func(t *testing.T) {
		a, err := New(Attributes{Foreground: Red, Bold: On})
		require.NoError(t, err)
		b, err := New(Attributes{Foreground: Red, Bold: On})
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
		assert.True(t, a == b)
	})

	t.Run("styles with different attributes are not equal", func(t *testing.T) {
		a, err := New(Attributes{Foreground: Red})
		require.NoError(t, err)
		b, err := New(Attributes{Foreground: Blue})
		require.NoError(t, err)
		assert.False(t, a.Equal(b))
	})

	t.Run("debug form lists only set attributes", func(t *testing.T) {
		s, err := New(Attributes{Foreground: Red, Bold: On})
		require.NoError(t, err)
		assert.Equal(t, "style(fg=red bold=on)", s.String())
		assert.Equal(t, "style()", Style{}.String())
	})
}
