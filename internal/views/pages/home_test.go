package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"atelier/internal/ui/tokens"
	"atelier/internal/views/theme"
)

func renderHome(t *testing.T, data HomeData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Home(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render home: %v", err)
	}
	return buf.String()
}

func TestHomeRendersShowcaseSections(t *testing.T) {
	out := renderHome(t, HomeData{Theme: theme.Resolve(theme.Light), APIURL: "https://api.example.test"})

	sections := []string{
		"Identity &amp; components for warm, scholarly product experiences",
		"Pedagogical, annotated, human",
		"Color palette",
		"Core UI components",
		"System foundations",
		"Dark studio preview",
	}
	last := -1
	for _, heading := range sections {
		i := strings.Index(out, heading)
		if i <= last {
			t.Fatalf("expected %q after the previous section", heading)
		}
		last = i
	}
}

func TestHomeUsesRegistryValues(t *testing.T) {
	out := renderHome(t, HomeData{Theme: theme.Resolve(theme.Light)})
	registry := tokens.Atelier()

	for _, path := range []string{"colors.background.paper", "colors.brand.primary", "colors.background.night"} {
		hex := registry.MustGet(path).String()
		if !strings.Contains(out, `style="background-color: `+hex+`"`) {
			t.Fatalf("expected swatch for %s (%s)", path, hex)
		}
	}
	if !strings.Contains(out, "font-family: &#34;Fraunces&#34;, Georgia") {
		t.Fatalf("expected display family sample")
	}
	if !strings.Contains(out, "No API endpoint configured.") {
		t.Fatalf("expected empty endpoint helper")
	}
}

func TestHomeShowsConfiguredEndpoint(t *testing.T) {
	out := renderHome(t, HomeData{Theme: theme.Resolve(theme.Dark), APIURL: "https://api.example.test"})
	if !strings.Contains(out, `value="https://api.example.test" readonly`) {
		t.Fatalf("expected read-only endpoint field: %s", out)
	}
	if !strings.Contains(out, `aria-pressed="true"`) {
		t.Fatalf("expected toggle to reflect dark mode")
	}
}

func TestHomeIDsAreStableAcrossRenders(t *testing.T) {
	data := HomeData{Theme: theme.Resolve(theme.Light)}
	first := renderHome(t, data)
	second := renderHome(t, data)
	if first != second {
		t.Fatalf("expected identical markup across renders")
	}
	for _, id := range []string{`id="workshop-title-1"`, `id="api-endpoint-2"`, `id="submission-slug-3"`, `id="workspace-focus-4"`} {
		if !strings.Contains(first, id) {
			t.Fatalf("expected %s in markup", id)
		}
	}
	if !strings.Contains(first, `aria-invalid="true" aria-describedby="submission-slug-3-description"`) {
		t.Fatalf("expected error field to reference its message")
	}
}
