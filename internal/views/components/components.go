package components

import (
	"strconv"

	"github.com/a-h/templ"

	"atelier/internal/ui"
	"atelier/internal/ui/tokens"
	"atelier/internal/views/theme"
)

// ThemePath is the endpoint that stores the theme preference.
const ThemePath = "/preferences/theme"

const (
	headingClass     = "flex flex-col gap-2"
	headingTitle     = "text-3xl font-display"
	headingCopy      = "max-w-2xl text-base text-atelier-shadow dark:text-atelier-haze"
	swatchBlockClass = "relative flex h-24 items-center justify-between rounded-2xl border border-white/30 px-4 font-medium uppercase tracking-[0.08em] shadow-inner"
	swatchNameClass  = "text-sm font-semibold uppercase tracking-[0.12em] text-atelier-shadow dark:text-atelier-haze"
	swatchUsageClass = "text-sm text-atelier-shadow/80 dark:text-atelier-haze/90"
	termClass        = "text-xs font-semibold uppercase tracking-[0.14em] text-atelier-shadow/80 dark:text-atelier-haze/80"
	spacingRowClass  = "flex items-center justify-between rounded-lg bg-white/70 px-3 py-2 text-atelier-ink dark:bg-atelier-charcoal/70 dark:text-atelier-parchment"
	breakpointClass  = "rounded-lg border border-atelier-sand/70 p-3 dark:border-atelier-shadow/60"
)

// ThemeToggle renders a form that flips the stored colour mode. Without
// JavaScript it posts and follows the redirect; with htmx it posts in place
// and the server asks for a refresh.
func ThemeToggle(current theme.Theme) templ.Component {
	return ui.Element("form", "inline-flex", templ.Attributes{
		"method":  "post",
		"action":  ThemePath,
		"hx-post": ThemePath,
		"hx-swap": "none",
	},
		ui.Element("input", "", templ.Attributes{"type": "hidden", "name": "theme", "value": theme.Toggle(current.Key)}),
		ui.Button(ui.ButtonProps{
			Variant: ui.ButtonGhost,
			Size:    ui.SizeSM,
			Type:    "submit",
			Attrs: templ.Attributes{
				"aria-pressed": strconv.FormatBool(current.Dark),
				"aria-label":   "Toggle between light and dark modes",
			},
		}, ui.Text(current.ToggleLabel)),
	)
}

// SectionHeading renders the h2 and lead paragraph opening a showcase section.
func SectionHeading(title, lead string, class string) templ.Component {
	return ui.Element("div", headingClass, nil,
		ui.Element("h2", ui.Cx(headingTitle, class), nil, ui.Text(title)),
		ui.Element("p", headingCopy, nil, ui.Text(lead)),
	)
}

// Swatch is one palette colour with its usage note.
type Swatch struct {
	Name  string
	Token string
	Hex   string
	Usage string
	// LightText selects white text for dark colours.
	LightText bool
}

// SwatchCard renders a palette colour as an outline card.
func SwatchCard(s Swatch) templ.Component {
	text := "text-atelier-ink"
	if s.LightText {
		text = "text-white"
	}
	return ui.Card(ui.CardProps{Variant: ui.CardOutline, Class: "overflow-hidden"},
		ui.Element("div", ui.Cx(swatchBlockClass, text), templ.Attributes{"style": "background-color: " + s.Hex},
			ui.Element("span", "", nil, ui.Text(s.Hex)),
			ui.Element("span", "text-xs", nil, ui.Text(s.Token)),
		),
		ui.CardContent(ui.Props{Class: "gap-1.5"},
			ui.Element("p", swatchNameClass, nil, ui.Text(s.Name)),
			ui.Element("p", swatchUsageClass, nil, ui.Text(s.Usage)),
		),
	)
}

// SpacingList renders spacing tokens as a two-column definition list.
func SpacingList(entries []tokens.Entry) templ.Component {
	rows := make([]templ.Component, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ui.Element("div", spacingRowClass, nil,
			ui.Element("dt", termClass, nil, ui.Text(entry.Key)),
			ui.Element("dd", "text-sm font-medium", nil, ui.Text(entry.Value.String())),
		))
	}
	return ui.Element("dl", "grid gap-2 text-sm sm:grid-cols-2", nil, rows...)
}

// BreakpointList renders breakpoint tokens with the experience each targets.
func BreakpointList(entries []tokens.Entry) templ.Component {
	rows := make([]templ.Component, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ui.Element("div", breakpointClass, nil,
			ui.Element("dt", termClass, nil, ui.Text(entry.Key)),
			ui.Element("dd", "mt-1 text-sm text-atelier-shadow dark:text-atelier-haze", nil,
				ui.Text("min-width "+entry.Value.String()+" · aligns with "+BreakpointAudience(entry.Key)+" experiences"),
			),
		))
	}
	return ui.Element("dl", "grid gap-3", nil, rows...)
}

// BreakpointAudience describes who a breakpoint is tuned for.
func BreakpointAudience(key string) string {
	switch key {
	case "xs":
		return "handheld"
	case "lg":
		return "dual column layout"
	}
	return key + "-level"
}
