package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"atelier/internal/ui"
	"atelier/internal/ui/tokens"
	"atelier/internal/views/components"
	"atelier/internal/views/theme"
)

// HomeData carries everything the showcase needs from the request.
type HomeData struct {
	Theme  theme.Theme
	APIURL string
	// Tokens defaults to the Atelier registry.
	Tokens *tokens.Registry
}

var titleCaser = cases.Title(language.English)

const (
	eyebrowClass = "text-sm uppercase tracking-[0.2em] text-atelier-shadow/80 dark:text-atelier-haze/80"
	heroClass    = "max-w-3xl text-4xl font-display leading-tight sm:text-5xl"
	leadClass    = "max-w-2xl text-lg text-atelier-shadow dark:text-atelier-haze"
	bulletClass  = "flex items-start gap-3"
	dotClass     = "mt-1 h-2.5 w-2.5 shrink-0 rounded-full"
)

// Home renders the identity showcase. Generated field ids restart on every
// render so the markup is stable across requests.
func Home(data HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		registry := data.Tokens
		if registry == nil {
			registry = tokens.Atelier()
		}
		content, err := homeContent(data, registry)
		if err != nil {
			return err
		}
		return content.Render(ui.WithIDScope(ctx), w)
	})
}

func homeContent(data HomeData, registry *tokens.Registry) (templ.Component, error) {
	palette, err := paletteSection(registry)
	if err != nil {
		return nil, err
	}
	foundations, err := foundationsSection(registry)
	if err != nil {
		return nil, err
	}
	return ui.Element("div", "flex flex-col gap-12 pb-16", nil,
		hero(data.Theme),
		identitySection(registry),
		palette,
		coreComponentsSection(data.APIURL),
		foundations,
		darkPreviewSection(),
	), nil
}

func hero(current theme.Theme) templ.Component {
	return ui.Element("header", "flex flex-col gap-6 pt-6", nil,
		ui.Element("div", "flex flex-col gap-3", nil,
			ui.Element("p", eyebrowClass, nil, ui.Text("Atelier de travail")),
			ui.Element("h1", heroClass, nil, ui.Text("Identity & components for warm, scholarly product experiences")),
			ui.Element("p", leadClass, nil, ui.Text("Atelier de travail fuses the intimacy of a craft studio with the rigor of pedagogical tooling. Components are tuned for focus, collaboration, and thoughtful annotation across light and dark canvases.")),
		),
		ui.Element("div", "flex flex-wrap items-center gap-3", nil,
			ui.Button(ui.ButtonProps{Size: ui.SizeLG}, ui.Text("Primary workshop action")),
			ui.Button(ui.ButtonProps{Variant: ui.ButtonTonal, Size: ui.SizeLG}, ui.Text("Secondary reference")),
			ui.Button(ui.ButtonProps{Variant: ui.ButtonGhost, Size: ui.SizeLG}, ui.Text("Quiet action")),
			components.ThemeToggle(current),
		),
	)
}

func identitySection(registry *tokens.Registry) templ.Component {
	bullet := func(dot, text string) templ.Component {
		return ui.Element("li", bulletClass, nil,
			ui.Element("span", ui.Cx(dotClass, dot), templ.Attributes{"aria-hidden": "true"}),
			ui.Element("span", "", nil, ui.Text(text)),
		)
	}
	return ui.NotebookSection(ui.SectionProps{Surface: ui.SurfaceMist},
		ui.Stack(ui.StackProps{Space: ui.SpaceRelaxed},
			ui.Card(ui.CardProps{Variant: ui.CardOutline},
				ui.CardHeader(ui.Props{},
					ui.CardEyebrow(ui.Props{}, ui.Text("Identity narrative")),
					ui.CardTitle(ui.Props{}, ui.Text("Pedagogical, annotated, human")),
					ui.CardDescription(ui.Props{}, ui.Text(registry.MustGet("identity.narrative").String())),
				),
				ui.CardContent(ui.Props{},
					ui.Element("ul", "grid gap-3 text-base text-atelier-shadow dark:text-atelier-haze", nil,
						bullet("bg-atelier-terracotta", "Terracotta anchors primary actions with warmth and confidence."),
						bullet("bg-atelier-moss", "Moss green supports secondary flows and successful states."),
						bullet("bg-atelier-highlight", "Highlighter yellow draws attention to critique notes and warnings."),
						bullet("bg-atelier-berry", "Berry red signals destructive or urgent feedback without harshness."),
					),
				),
			),
			ui.Card(ui.CardProps{Variant: ui.CardTonal},
				ui.CardHeader(ui.Props{},
					ui.CardEyebrow(ui.Props{}, ui.Text("Typography stack")),
					ui.CardTitle(ui.Props{}, ui.Text("Fraunces & Work Sans")),
					ui.CardDescription(ui.Props{}, ui.Text("Fraunces provides expressive, serif-driven headlines while Work Sans keeps interface copy clear and approachable.")),
				),
				ui.CardContent(ui.Props{Class: "gap-3"},
					ui.Element("p", "font-display text-3xl", nil, ui.Text("Display · Fraunces")),
					ui.Element("p", "text-base", nil, ui.Text("Body · Work Sans")),
					ui.Element("p", "font-mono text-sm", nil, ui.Text("Mono · IBM Plex Mono")),
				),
			),
		),
	)
}

// paletteSwatches lists the showcased colours in display order.
var paletteSwatches = []struct {
	name, token, usage string
	light              bool
}{
	{"Paper", "colors.background.paper", "Primary canvas for reading and long-form study.", false},
	{"Parchment", "colors.background.parchment", "Secondary surfaces, cards, and notebook trims.", false},
	{"Terracotta", "colors.brand.primary", "Primary actions and key highlights.", true},
	{"Moss", "colors.brand.secondary", "Supportive actions, success states, and progress.", true},
	{"Highlight", "colors.brand.highlight", "Annotations, warnings, and callouts.", false},
	{"Night", "colors.background.night", "Dark mode canvas with warm undertones.", true},
}

func paletteSection(registry *tokens.Registry) (templ.Component, error) {
	cards := make([]templ.Component, 0, len(paletteSwatches))
	for _, swatch := range paletteSwatches {
		value, err := registry.Get(swatch.token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, components.SwatchCard(components.Swatch{
			Name:      swatch.name,
			Token:     swatch.token,
			Hex:       value.String(),
			Usage:     swatch.usage,
			LightText: swatch.light,
		}))
	}
	return ui.Element("section", "flex flex-col gap-6", nil,
		components.SectionHeading("Color palette", "Earthy neutrals with energising accents. Each token has a light and dark pairing for accessible contrast.", ""),
		ui.ResponsiveGrid(ui.GridProps{SM: ui.Columns2, LG: ui.Columns3}, cards...),
	), nil
}

func coreComponentsSection(apiURL string) templ.Component {
	variants := make([]templ.Component, 0, len(ui.ButtonVariants())+1)
	for _, variant := range ui.ButtonVariants() {
		variants = append(variants, ui.Button(ui.ButtonProps{Variant: variant}, ui.Text(titleCaser.String(variant.String()))))
	}
	variants = append(variants, ui.Button(ui.ButtonProps{Loading: true, LoadingLabel: "Saving…"}, ui.Text("Save")))

	endpointHelp := "Sourced from PUBLIC_API_URL for environment-aware integrations."
	if apiURL == "" {
		endpointHelp = "No API endpoint configured."
	}

	tiles := make([]templ.Component, 0, 4)
	for _, tile := range []struct{ title, copy string }{
		{"Daily log", "Capture studio notes and reflections."},
		{"Critique queue", "Pending reviews sorted by urgency."},
		{"Reference shelf", "Curated readings and exemplars."},
		{"Workshop roster", "Participants and their current focus."},
	} {
		tiles = append(tiles, ui.Card(ui.CardProps{Variant: ui.CardOutline, Class: "p-4"},
			ui.Element("p", "font-display text-lg", nil, ui.Text(tile.title)),
			ui.Element("p", "text-sm text-atelier-shadow dark:text-atelier-haze", nil, ui.Text(tile.copy)),
		))
	}

	return ui.Element("section", "flex flex-col gap-6", nil,
		components.SectionHeading("Core UI components", "Variants follow the same tokens so interactive states stay legible in both modes.", ""),
		ui.ResponsiveGrid(ui.GridProps{SM: ui.Columns1, LG: ui.Columns2},
			ui.Card(ui.CardProps{},
				ui.CardHeader(ui.Props{},
					ui.CardEyebrow(ui.Props{}, ui.Text("Buttons")),
					ui.CardTitle(ui.Props{}, ui.Text("Actions with intent")),
				),
				ui.CardContent(ui.Props{Class: "flex-row flex-wrap gap-3"}, variants...),
			),
			ui.Card(ui.CardProps{},
				ui.CardHeader(ui.Props{},
					ui.CardEyebrow(ui.Props{}, ui.Text("Inputs")),
					ui.CardTitle(ui.Props{}, ui.Text("Annotated fields")),
				),
				ui.CardContent(ui.Props{},
					ui.InputField(ui.InputFieldProps{Label: "Workshop title", Placeholder: "e.g. Critique circle", HelperText: "Give the session a short, memorable name."}),
					ui.InputField(ui.InputFieldProps{Label: "API endpoint", Value: apiURL, ReadOnly: true, HelperText: endpointHelp}),
					ui.InputField(ui.InputFieldProps{Label: "Submission slug", Value: "atelier-identity", Error: "This slug is already in use.", Required: true}),
				),
				ui.CardFooter(ui.Props{},
					ui.Button(ui.ButtonProps{Variant: ui.ButtonGhost, Size: ui.SizeSM}, ui.Text("Cancel")),
					ui.Button(ui.ButtonProps{Size: ui.SizeSM}, ui.Text("Save draft")),
				),
			),
			ui.Card(ui.CardProps{},
				ui.CardHeader(ui.Props{},
					ui.CardEyebrow(ui.Props{}, ui.Text("Feedback")),
					ui.CardTitle(ui.Props{}, ui.Text("Alerts & notices")),
				),
				ui.CardContent(ui.Props{Class: "gap-3"},
					ui.Alert(ui.AlertProps{Tone: ui.ToneSuccess, Title: "Submission saved", Description: "Your annotations are stored in the shared notebook."}),
					ui.Alert(ui.AlertProps{Tone: ui.ToneInfo, Title: "Draft synced", Description: "Collaborators will see the latest revision."}),
					ui.Alert(ui.AlertProps{Tone: ui.ToneWarning, Title: "Review required", Description: "Two critique notes still need a response."}),
					ui.Alert(ui.AlertProps{Tone: ui.ToneDanger, Title: "Sync failed", Description: "Check your connection and try again."}),
				),
			),
			ui.Card(ui.CardProps{},
				ui.CardHeader(ui.Props{},
					ui.CardEyebrow(ui.Props{}, ui.Text("Layouts")),
					ui.CardTitle(ui.Props{}, ui.Text("Notebook grids")),
				),
				ui.CardContent(ui.Props{},
					ui.ResponsiveGrid(ui.GridProps{SM: ui.Columns2, LG: ui.Columns2, Class: "gap-3"}, tiles...),
				),
			),
		),
	)
}

func foundationsSection(registry *tokens.Registry) (templ.Component, error) {
	spacing, err := registry.Entries("spacing")
	if err != nil {
		return nil, err
	}
	breakpoints, err := registry.Entries("breakpoints")
	if err != nil {
		return nil, err
	}
	display, err := registry.Get("typography.families.display")
	if err != nil {
		return nil, err
	}

	card := func(group, title string, body templ.Component) templ.Component {
		return ui.Card(ui.CardProps{Variant: ui.CardOutline},
			ui.CardHeader(ui.Props{},
				ui.CardEyebrow(ui.Props{}, ui.Text(titleCaser.String(group))),
				ui.CardTitle(ui.Props{}, ui.Text(title)),
			),
			ui.CardContent(ui.Props{}, body),
		)
	}

	return ui.Element("section", "flex flex-col gap-6", nil,
		components.SectionHeading("System foundations", "Spacing, breakpoints, and type tokens shared by every component.", ""),
		ui.ResponsiveGrid(ui.GridProps{SM: ui.Columns1, LG: ui.Columns3},
			card("spacing", "Notebook rhythm", components.SpacingList(spacing)),
			card("breakpoints", "Responsive thresholds", components.BreakpointList(breakpoints)),
			card("typography", "Display family", ui.Element("code", "font-mono text-sm", nil, ui.Text("font-family: "+display.String()))),
		),
	), nil
}

func darkPreviewSection() templ.Component {
	return ui.NotebookSection(ui.SectionProps{Surface: ui.SurfaceNight, Class: "dark"},
		ui.Stack(ui.StackProps{},
			components.SectionHeading("Dark studio preview", "The night canvas keeps contrast warm for late critique sessions.", "text-atelier-parchment"),
			ui.ResponsiveGrid(ui.GridProps{SM: ui.Columns1, LG: ui.Columns2},
				ui.Card(ui.CardProps{},
					ui.CardHeader(ui.Props{},
						ui.CardTitle(ui.Props{}, ui.Text("Buttons & inputs")),
					),
					ui.CardContent(ui.Props{},
						ui.Element("div", "flex flex-wrap gap-3", nil,
							ui.Button(ui.ButtonProps{}, ui.Text("Primary")),
							ui.Button(ui.ButtonProps{Variant: ui.ButtonSecondary}, ui.Text("Secondary")),
							ui.Button(ui.ButtonProps{Variant: ui.ButtonGhost}, ui.Text("Ghost")),
						),
						ui.InputField(ui.InputFieldProps{Label: "Workspace focus", Placeholder: "Describe tonight's session", HelperText: "Visible to everyone in the studio."}),
					),
				),
				ui.Card(ui.CardProps{},
					ui.CardHeader(ui.Props{},
						ui.CardTitle(ui.Props{}, ui.Text("Alerts under low light")),
					),
					ui.CardContent(ui.Props{Class: "gap-3"},
						ui.Alert(ui.AlertProps{Tone: ui.ToneSuccess, Title: "Saved to archive", Description: "The critique recording is available to the cohort."}),
						ui.Alert(ui.AlertProps{Tone: ui.ToneWarning, Title: "Pending critique", Description: "One submission is waiting for mentor feedback."}),
					),
				),
			),
		),
	)
}
