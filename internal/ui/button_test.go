package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonClassDefaults(t *testing.T) {
	t.Parallel()

	omitted, err := ButtonClass(ButtonProps{})
	require.NoError(t, err)
	explicit, err := ButtonClass(ButtonProps{Variant: ButtonPrimary, Size: SizeMD})
	require.NoError(t, err)
	assert.Equal(t, explicit, omitted)
	assert.Contains(t, omitted, "h-11 px-5 text-sm")
	assert.Contains(t, omitted, "bg-atelier-terracotta")
}

func TestButtonFragmentsAreDistinct(t *testing.T) {
	t.Parallel()

	seen := map[string]ButtonVariant{}
	for _, v := range ButtonVariants() {
		fragment, err := v.fragment()
		require.NoError(t, err, v.String())
		require.NotEmpty(t, fragment)
		if prev, ok := seen[fragment]; ok {
			t.Fatalf("variants %s and %s share a fragment", prev, v)
		}
		seen[fragment] = v
	}

	sizes := map[string]ButtonSize{}
	for _, s := range ButtonSizes() {
		fragment, err := s.fragment()
		require.NoError(t, err, s.String())
		require.NotEmpty(t, fragment)
		_, dup := sizes[fragment]
		require.False(t, dup, "size %s repeats a fragment", s)
		sizes[fragment] = s
	}
}

func TestButtonUnknownValues(t *testing.T) {
	t.Parallel()

	_, err := ButtonClass(ButtonProps{Variant: ButtonVariant(42)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAxisValue))

	var axisErr *AxisError
	require.ErrorAs(t, err, &axisErr)
	assert.Equal(t, "button", axisErr.Component)
	assert.Equal(t, "variant", axisErr.Axis)

	_, err = ButtonClass(ButtonProps{Size: ButtonSize(-1)})
	assert.ErrorIs(t, err, ErrUnknownAxisValue)

	_, err = ParseButtonVariant("loud")
	assert.ErrorIs(t, err, ErrUnknownAxisValue)

	var buf strings.Builder
	err = Button(ButtonProps{Variant: ButtonVariant(9)}).Render(context.Background(), &buf)
	assert.ErrorIs(t, err, ErrUnknownAxisValue)
	assert.Empty(t, buf.String())
}

func TestParseButtonAxes(t *testing.T) {
	t.Parallel()

	v, err := ParseButtonVariant(" Ghost ")
	require.NoError(t, err)
	assert.Equal(t, ButtonGhost, v)

	v, err = ParseButtonVariant("")
	require.NoError(t, err)
	assert.Equal(t, ButtonPrimary, v)

	s, err := ParseButtonSize("lg")
	require.NoError(t, err)
	assert.Equal(t, SizeLG, s)
}

func TestButtonOverrideIsLast(t *testing.T) {
	t.Parallel()

	states := []struct{ loading, disabled bool }{{false, false}, {false, true}, {true, false}, {true, true}}
	for _, variant := range ButtonVariants() {
		for _, size := range ButtonSizes() {
			for _, state := range states {
				class, err := ButtonClass(ButtonProps{
					Variant:  variant,
					Size:     size,
					Loading:  state.loading,
					Disabled: state.disabled,
					Class:    spacedOverride,
				})
				require.NoError(t, err, "%v/%v", variant, size)
				assertOverrideLast(t, class)
			}
		}
	}
}

func TestButtonRender(t *testing.T) {
	t.Parallel()

	out := render(t, context.Background(), Button(ButtonProps{Variant: ButtonSecondary}, Text("Save")))
	assert.True(t, strings.HasPrefix(out, `<button type="button" class="`), out)
	assert.Contains(t, out, `data-variant="secondary"`)
	assert.Contains(t, out, ">Save</button>")
	assert.NotContains(t, out, "disabled")
	assert.NotContains(t, out, "aria-busy")
}

func TestButtonLoadingOverridesDisabled(t *testing.T) {
	t.Parallel()

	out := render(t, context.Background(), Button(ButtonProps{Loading: true, Disabled: false}, Text("Save")))
	assert.Contains(t, out, " disabled")
	assert.Contains(t, out, `aria-busy="true"`)
	assert.Contains(t, out, buttonDisabled)
	assert.Contains(t, out, buttonLoading)
	assert.Contains(t, out, "Working…")
	assert.NotContains(t, out, "Save")
	assert.Contains(t, out, `aria-hidden="true"`)

	custom := render(t, context.Background(), Button(ButtonProps{Loading: true, LoadingLabel: "Saving <draft>"}))
	assert.Contains(t, custom, "Saving &lt;draft&gt;")
	assert.NotContains(t, custom, DefaultLoadingLabel)
}

func TestButtonDisabledWithoutLoading(t *testing.T) {
	t.Parallel()

	class, err := ButtonClass(ButtonProps{Disabled: true})
	require.NoError(t, err)
	assert.Contains(t, class, buttonDisabled)
	assert.NotContains(t, class, buttonLoading)
}

func TestButtonPassthroughAttributes(t *testing.T) {
	t.Parallel()

	out := render(t, context.Background(), Button(ButtonProps{
		Type: "submit",
		Attrs: templ.Attributes{
			"type":       "reset",
			"class":      "ignored",
			"name":       `a"b`,
			"aria-label": "Send",
			"hx-post":    "/preferences/theme",
		},
	}, Text("Go")))

	assert.Contains(t, out, `type="submit"`)
	assert.NotContains(t, out, `type="reset"`)
	assert.NotContains(t, out, `"ignored"`)
	assert.Contains(t, out, `name="a&#34;b"`)
	assert.Contains(t, out, `aria-label="Send"`)
	assert.Contains(t, out, `hx-post="/preferences/theme"`)
	assert.Less(t, strings.Index(out, "aria-label"), strings.Index(out, "hx-post"))
}
