package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ColorAlias binds an `atelier-*` utility colour name to a registry path.
type ColorAlias struct {
	Name string
	Path string
	Hex  string
}

// utility colour names used by the component fragments
var colorAliases = []struct {
	name string
	path string
}{
	{"paper", "colors.background.paper"},
	{"parchment", "colors.background.parchment"},
	{"sand", "colors.background.sand"},
	{"mist", "colors.background.mist"},
	{"night", "colors.background.night"},
	{"charcoal", "colors.background.charcoal"},
	{"ink", "colors.text.primary"},
	{"shadow", "colors.text.secondary"},
	{"haze", "colors.border.subtle"},
	{"terracotta", "colors.brand.primary"},
	{"terracotta-strong", "colors.brand.primaryStrong"},
	{"moss", "colors.brand.secondary"},
	{"moss-strong", "colors.brand.secondaryStrong"},
	{"sage", "colors.feedback.successSurface"},
	{"sun", "colors.feedback.warning"},
	{"highlight", "colors.brand.highlight"},
	{"berry", "colors.feedback.danger"},
	{"berry-strong", "colors.feedback.danger"},
}

// TailwindColors resolves the utility colour aliases against the registry.
func (r *Registry) TailwindColors() ([]ColorAlias, error) {
	aliases := make([]ColorAlias, 0, len(colorAliases))
	for _, alias := range colorAliases {
		value, err := r.Get(alias.path)
		if err != nil {
			return nil, fmt.Errorf("resolve colour alias %s: %w", alias.name, err)
		}
		aliases = append(aliases, ColorAlias{Name: alias.name, Path: alias.path, Hex: value.String()})
	}
	return aliases, nil
}

// CSSVariables renders every leaf as a custom property on :root, e.g.
// `--atelier-colors-brand-primary-strong: #9A4726;`.
func (r *Registry) CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	r.Walk(func(path string, value Value) {
		fmt.Fprintf(&b, "  %s: %s;\n", VariableName(path), value.String())
	})
	b.WriteString("}\n")
	return b.String()
}

// VariableName returns the custom property name for a token path.
func VariableName(path string) string {
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		segments[i] = kebab(segment)
	}
	return "--atelier-" + strings.Join(segments, "-")
}

func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type member struct {
	key   string
	value any
}

type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", m.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TailwindConfig builds the runtime Tailwind configuration object used by the
// page layout: class-based dark mode, registry breakpoints as screens (in
// ascending order), the atelier colour aliases, font families and the
// notebook shadow.
func (r *Registry) TailwindConfig() ([]byte, error) {
	breakpoints, err := r.Entries("breakpoints")
	if err != nil {
		return nil, err
	}
	screens := make(object, 0, len(breakpoints))
	for _, entry := range breakpoints {
		screens = append(screens, member{entry.Key, entry.Value.String()})
	}

	aliases, err := r.TailwindColors()
	if err != nil {
		return nil, err
	}
	colors := make(object, 0, len(aliases))
	for _, alias := range aliases {
		colors = append(colors, member{alias.Name, alias.Hex})
	}

	families, err := r.Entries("typography.families")
	if err != nil {
		return nil, err
	}
	fonts := make(object, 0, len(families))
	for _, entry := range families {
		fonts = append(fonts, member{entry.Key, entry.Value.String()})
	}

	shadow, err := r.Get("shadows.medium")
	if err != nil {
		return nil, err
	}

	config := object{
		{"darkMode", "class"},
		{"theme", object{
			{"screens", screens},
			{"extend", object{
				{"colors", object{{"atelier", colors}}},
				{"fontFamily", fonts},
				{"boxShadow", object{{"notebook", shadow.String()}}},
			}},
		}},
	}
	return json.Marshal(config)
}
