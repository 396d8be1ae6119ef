// Package tokens holds the design constants of the Atelier de Travail identity
// system. The registry is shared by the component library, the showcase page
// and the CLI.
package tokens

var atelier = New(
	Group("identity",
		String("name", "Atelier de Travail"),
		String("narrative", "A pedagogical workspace aesthetic that balances warmth, focus, and the crafted imperfection of annotated notebooks."),
	),
	Group("colors",
		Group("background",
			String("paper", "#F9F5ED"),
			String("parchment", "#F1E7D8"),
			String("sand", "#E3D2BA"),
			String("mist", "#F2ECE4"),
			String("night", "#15120F"),
			String("charcoal", "#1F1A16"),
		),
		Group("border",
			String("subtle", "#E3D2BA"),
			String("medium", "#C98A5B"),
			String("bold", "#B65C38"),
			String("contrast", "#15120F"),
		),
		Group("text",
			String("primary", "#2C2622"),
			String("secondary", "#473F38"),
			String("muted", "#6F655B"),
			String("onDark", "#F1E7D8"),
			String("accent", "#B65C38"),
		),
		Group("brand",
			String("primary", "#B65C38"),
			String("primaryStrong", "#9A4726"),
			String("secondary", "#5F7042"),
			String("secondaryStrong", "#46572E"),
			String("highlight", "#F6C85F"),
		),
		Group("feedback",
			String("info", "#473F38"),
			String("infoSurface", "#F2ECE4"),
			String("success", "#5F7042"),
			String("successSurface", "#EEF4EA"),
			String("warning", "#D38A31"),
			String("warningSurface", "#FBF2DF"),
			String("danger", "#824039"),
			String("dangerSurface", "#F8E9E7"),
		),
	),
	Group("typography",
		Group("families",
			String("sans", `"Work Sans", ui-sans-serif, system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`),
			String("display", `"Fraunces", Georgia, "Times New Roman", serif`),
			String("mono", `"IBM Plex Mono", ui-monospace, SFMono-Regular, Menlo, monospace`),
		),
		Group("scale",
			String("xs", "0.8125rem"),
			String("sm", "0.875rem"),
			String("base", "1rem"),
			String("md", "1.125rem"),
			String("lg", "1.25rem"),
			String("xl", "1.5rem"),
			String("2xl", "1.875rem"),
			String("3xl", "2.25rem"),
		),
		Group("lineHeights",
			Number("tight", 1.25),
			Number("snug", 1.4),
			Number("standard", 1.6),
			Number("relaxed", 1.75),
		),
		Group("letterSpacing",
			String("body", "-0.005em"),
			String("caps", "0.08em"),
			String("label", "0.02em"),
		),
	),
	Group("spacing",
		String("00", "0rem"),
		String("01", "0.25rem"),
		String("02", "0.5rem"),
		String("03", "0.75rem"),
		String("04", "1rem"),
		String("05", "1.5rem"),
		String("06", "2rem"),
		String("07", "2.5rem"),
		String("08", "3rem"),
		String("09", "4rem"),
		String("10", "5rem"),
	),
	Group("radii",
		String("small", "0.5rem"),
		String("medium", "0.75rem"),
		String("large", "1.25rem"),
		String("extra", "1.75rem"),
		String("pill", "999px"),
	),
	Group("shadows",
		String("soft", "0 4px 12px rgba(44, 38, 34, 0.08)"),
		String("medium", "0 18px 40px -28px rgba(21, 18, 15, 0.45)"),
		String("focus", "0 0 0 3px rgba(182, 92, 56, 0.35)"),
	),
	Group("breakpoints",
		String("xs", "480px"),
		String("sm", "640px"),
		String("md", "864px"),
		String("lg", "1080px"),
		String("xl", "1280px"),
		String("2xl", "1440px"),
	),
)

// Atelier returns the Atelier de Travail registry. It is built once at
// package initialisation and never changes.
func Atelier() *Registry {
	return atelier
}
