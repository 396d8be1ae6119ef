package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardClass(t *testing.T) {
	t.Parallel()

	omitted, err := CardClass(0, "")
	require.NoError(t, err)
	explicit, err := CardClass(CardElevated, "")
	require.NoError(t, err)
	assert.Equal(t, explicit, omitted)

	seen := map[string]bool{}
	for _, v := range CardVariants() {
		class, err := CardClass(v, "")
		require.NoError(t, err)
		require.False(t, seen[class])
		seen[class] = true
	}

	_, err = CardClass(CardVariant(12), "")
	assert.ErrorIs(t, err, ErrUnknownAxisValue)

	v, err := ParseCardVariant("TONAL")
	require.NoError(t, err)
	assert.Equal(t, CardTonal, v)
}

func TestCardFamilyRender(t *testing.T) {
	t.Parallel()

	out := render(t, context.Background(), Card(CardProps{Variant: CardOutline, Attrs: templ.Attributes{"id": "notes"}},
		CardHeader(Props{},
			CardEyebrow(Props{}, Text("Session")),
			CardTitle(Props{Class: "text-3xl"}, Text("Mock interview")),
			CardDescription(Props{}, Text("Practice")),
		),
		CardContent(Props{}, Text("Body")),
		CardFooter(Props{}, Text("Actions")),
	))

	assert.True(t, strings.HasPrefix(out, `<section class="`+cardBase), out)
	assert.Contains(t, out, `id="notes"`)
	assert.Contains(t, out, `<h3 class="`+cardTitle+` text-3xl">Mock interview</h3>`)
	assert.Contains(t, out, `<p class="`+cardEyebrow+`">Session</p>`)
	assert.Contains(t, out, `<div class="`+cardFooter+`">Actions</div>`)
	assert.True(t, strings.HasSuffix(out, "</section>"))

	order := []string{"Session", "Mock interview", "Practice", "Body", "Actions"}
	last := -1
	for _, s := range order {
		i := strings.Index(out, s)
		require.Greater(t, i, last, s)
		last = i
	}
}
