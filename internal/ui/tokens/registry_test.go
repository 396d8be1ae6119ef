package tokens

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGetReturnsDeclaredLeaves(t *testing.T) {
	t.Parallel()

	reg := Atelier()

	tests := []struct {
		path string
		want string
	}{
		{"colors.brand.primary", "#B65C38"},
		{"colors.background.paper", "#F9F5ED"},
		{"typography.scale.2xl", "1.875rem"},
		{"typography.lineHeights.standard", "1.6"},
		{"spacing.04", "1rem"},
		{"breakpoints.md", "864px"},
		{"identity.name", "Atelier de Travail"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			value, err := reg.Get(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value.String())
		})
	}
}

func TestNumericLeavesKeepTheirType(t *testing.T) {
	value := Atelier().MustGet("typography.lineHeights.relaxed")
	require.True(t, value.IsNumber())
	f, ok := value.Float()
	require.True(t, ok)
	assert.InDelta(t, 1.75, f, 1e-9)

	_, ok = Atelier().MustGet("radii.pill").Float()
	assert.False(t, ok)
}

func TestGetRejectsUnknownPathsAndGroups(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"colors.brand.tertiary", "colors", "colors.brand", "", "spacing.04.extra", "nope"} {
		_, err := Atelier().Get(path)
		require.Error(t, err, path)
		assert.True(t, errors.Is(err, ErrUnknownPath), "path %q: %v", path, err)
	}
}

func TestMustGetPanicsOnUnknownPath(t *testing.T) {
	assert.Panics(t, func() {
		Atelier().MustGet("colors.brand.neon")
	})
}

func TestEntriesFollowDeclarationOrder(t *testing.T) {
	t.Parallel()

	spacing, err := Atelier().Entries("spacing")
	require.NoError(t, err)

	var keys []string
	for _, entry := range spacing {
		keys = append(keys, entry.Key)
		assert.False(t, entry.Group)
		assert.Equal(t, "spacing."+entry.Key, entry.Path)
	}
	want := []string{"00", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("spacing order mismatch (-want +got):\n%s", diff)
	}

	breakpoints, err := Atelier().Entries("breakpoints")
	require.NoError(t, err)
	var names []string
	for _, entry := range breakpoints {
		names = append(names, entry.Key)
	}
	if diff := cmp.Diff([]string{"xs", "sm", "md", "lg", "xl", "2xl"}, names); diff != "" {
		t.Fatalf("breakpoint order mismatch (-want +got):\n%s", diff)
	}
}

func TestEntriesAtRootListsGroups(t *testing.T) {
	entries, err := Atelier().Entries("")
	require.NoError(t, err)

	var keys []string
	for _, entry := range entries {
		assert.True(t, entry.Group)
		keys = append(keys, entry.Key)
	}
	assert.Equal(t, []string{"identity", "colors", "typography", "spacing", "radii", "shadows", "breakpoints"}, keys)
}

func TestEntriesRejectsLeaf(t *testing.T) {
	_, err := Atelier().Entries("radii.pill")
	assert.ErrorIs(t, err, ErrNotGroup)

	_, err = Atelier().Entries("radii.enormous")
	assert.ErrorIs(t, err, ErrUnknownPath)
}

func TestWalkVisitsEveryLeafInOrder(t *testing.T) {
	var paths []string
	Atelier().Walk(func(path string, _ Value) {
		paths = append(paths, path)
	})

	require.NotEmpty(t, paths)
	assert.Equal(t, "identity.name", paths[0])
	assert.Equal(t, "breakpoints.2xl", paths[len(paths)-1])
	for _, path := range paths {
		_, err := Atelier().Get(path)
		assert.NoError(t, err, path)
	}
}

func TestNewPanicsOnDuplicateKeys(t *testing.T) {
	assert.Panics(t, func() {
		New(Group("colors", String("a", "#000"), String("a", "#fff")))
	})
	assert.Panics(t, func() {
		New(String("a.b", "x"))
	})
}

func TestMarshalJSONPreservesOrder(t *testing.T) {
	reg := New(
		Group("spacing", String("02", "0.5rem"), String("01", "0.25rem")),
		Group("lineHeights", Number("tight", 1.25)),
	)

	out, err := json.Marshal(reg)
	require.NoError(t, err)
	assert.Equal(t, `{"spacing":{"02":"0.5rem","01":"0.25rem"},"lineHeights":{"tight":1.25}}`, string(out))
}

func TestMarshalYAMLPreservesOrder(t *testing.T) {
	reg := New(Group("spacing", String("10", "5rem"), String("00", "0rem")), Group("colors", String("paper", "#F9F5ED")))

	out, err := yaml.Marshal(reg)
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &doc))
	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)
	spacing := root.Content[1]
	assert.Equal(t, "10", spacing.Content[0].Value)
	assert.Equal(t, "00", spacing.Content[2].Value)

	var decoded map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "#F9F5ED", decoded["colors"]["paper"])
	assert.Equal(t, "5rem", decoded["spacing"]["10"])
	assert.Equal(t, "0rem", decoded["spacing"]["00"])
}
