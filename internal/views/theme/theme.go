package theme

import "strings"

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// Theme contains the resolved classes and toggle copy for one colour mode.
type Theme struct {
	Key string
	// HTMLClass is set on the <html> element; Tailwind's class strategy keys
	// every dark: variant off it.
	HTMLClass string
	BodyClass string
	// ToggleLabel names the action the toggle performs next.
	ToggleLabel string
	Dark        bool
}

const (
	Light = "light"
	Dark  = "dark"

	// DefaultKey defines the fallback theme when no preference exists.
	DefaultKey = Light
)

const bodyClass = "min-h-screen bg-atelier-paper font-sans text-atelier-ink antialiased dark:bg-atelier-night dark:text-atelier-parchment"

var catalogue = map[string]Theme{
	Light: {
		Key:         Light,
		BodyClass:   bodyClass,
		ToggleLabel: "Switch to dark canvas",
	},
	Dark: {
		Key:         Dark,
		HTMLClass:   "dark",
		BodyClass:   bodyClass,
		ToggleLabel: "Switch to light canvas",
		Dark:        true,
	},
}

var options = []Option{
	{Value: Light, Label: "Light canvas"},
	{Value: Dark, Label: "Dark canvas"},
}

// Resolve returns the registered theme for key, falling back to light.
func Resolve(key string) Theme {
	if value, ok := catalogue[normalize(key)]; ok {
		return value
	}
	return catalogue[DefaultKey]
}

// Valid reports whether key names a registered theme.
func Valid(key string) bool {
	_, ok := catalogue[normalize(key)]
	return ok
}

// Toggle returns the key of the opposite mode.
func Toggle(key string) string {
	if Resolve(key).Dark {
		return Light
	}
	return Dark
}

// FromClientHint maps a Sec-CH-Prefers-Color-Scheme header value to a theme
// key. Unknown or missing hints select the default.
func FromClientHint(value string) string {
	if strings.EqualFold(strings.Trim(strings.TrimSpace(value), `"`), Dark) {
		return Dark
	}
	return DefaultKey
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	return options
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
