package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{name: "empty", fragments: nil, want: ""},
		{name: "only blanks", fragments: []string{"", "  ", "\t"}, want: ""},
		{name: "joins in order", fragments: []string{"a", "b", "c"}, want: "a b c"},
		{name: "drops falsy", fragments: []string{"a", "", "b", " "}, want: "a b"},
		{name: "keeps fragments verbatim", fragments: []string{"  a ", "b  "}, want: "  a  b  "},
		{name: "keeps duplicates", fragments: []string{"p-2", "p-4", "p-2"}, want: "p-2 p-4 p-2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Cx(tt.fragments...))
		})
	}
}

func TestCxFalsyEquivalence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Cx("a", "b"), Cx("", "a", When(false, "x"), "b", ""))
	assert.Equal(t, "a x", Cx("a", When(true, "x")))
}

const spacedOverride = " w-full  px-2 "

func assertOverrideLast(t *testing.T, class string) {
	t.Helper()
	assert.True(t, strings.HasSuffix(class, " "+spacedOverride), "%q does not end with the override", class)
}

func TestResolversKeepOverrideLast(t *testing.T) {
	t.Parallel()

	t.Run("alert", func(t *testing.T) {
		for _, tone := range Tones() {
			class, err := AlertClass(tone, spacedOverride)
			require.NoError(t, err, tone)
			assertOverrideLast(t, class)
		}
	})
	t.Run("card", func(t *testing.T) {
		for _, variant := range CardVariants() {
			class, err := CardClass(variant, spacedOverride)
			require.NoError(t, err, variant)
			assertOverrideLast(t, class)
		}
	})
	t.Run("stack", func(t *testing.T) {
		for _, space := range Spaces() {
			class, err := StackClass(space, spacedOverride)
			require.NoError(t, err, space)
			assertOverrideLast(t, class)
		}
	})
	t.Run("section", func(t *testing.T) {
		for _, surface := range Surfaces() {
			class, err := SectionClass(surface, spacedOverride)
			require.NoError(t, err, surface)
			assertOverrideLast(t, class)
		}
	})
	t.Run("grid", func(t *testing.T) {
		for _, sm := range ColumnCounts() {
			for _, lg := range ColumnCounts() {
				class, err := GridClass(sm, lg, spacedOverride)
				require.NoError(t, err, "%v/%v", sm, lg)
				assertOverrideLast(t, class)
			}
		}
	})
	t.Run("input", func(t *testing.T) {
		assertOverrideLast(t, InputClass(false, spacedOverride))
		assertOverrideLast(t, InputClass(true, spacedOverride))
	})
}
