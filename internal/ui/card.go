package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CardVariant selects the surface treatment of a Card.
type CardVariant int

const (
	CardElevated CardVariant = iota + 1
	CardOutline
	CardTonal
)

var cardVariantAxis = axis[CardVariant]{
	component: "card",
	name:      "variant",
	fallback:  CardElevated,
	values:    []CardVariant{CardElevated, CardOutline, CardTonal},
	labels:    []string{"elevated", "outline", "tonal"},
}

func (v CardVariant) String() string { return cardVariantAxis.label(v) }

// CardVariants lists every declared card variant.
func CardVariants() []CardVariant { return cardVariantAxis.all() }

// ParseCardVariant converts a variant name. The empty string selects elevated.
func ParseCardVariant(s string) (CardVariant, error) { return cardVariantAxis.parse(s) }

const (
	cardBase        = "group/card relative flex flex-col gap-4 rounded-2xl border transition-shadow duration-200 focus-within:shadow-notebook focus-within:outline-none"
	cardHeader      = "flex flex-col gap-2 border-b border-atelier-sand/60 pb-4 dark:border-atelier-shadow/70"
	cardTitle       = "font-display text-2xl text-atelier-ink dark:text-atelier-parchment"
	cardEyebrow     = "text-xs font-semibold uppercase tracking-[0.12em] text-atelier-shadow/80 dark:text-atelier-haze/80"
	cardDescription = "text-base text-atelier-shadow dark:text-atelier-haze"
	cardContent     = "flex flex-col gap-4"
	cardFooter      = "mt-auto flex items-center justify-end gap-3 border-t border-atelier-sand/60 pt-4 dark:border-atelier-shadow/70"
)

func (v CardVariant) fragment() (string, error) {
	switch v {
	case CardElevated:
		return "border-atelier-sand bg-white shadow-sm hover:shadow-notebook dark:border-atelier-shadow dark:bg-atelier-charcoal/80 dark:hover:shadow-notebook", nil
	case CardOutline:
		return "border-atelier-sand bg-transparent dark:border-atelier-shadow", nil
	case CardTonal:
		return "border-transparent bg-atelier-mist shadow-sm hover:shadow-notebook dark:bg-atelier-charcoal", nil
	}
	return "", cardVariantAxis.unknown(v.String())
}

// CardProps configures a Card. The zero Variant selects elevated.
type CardProps struct {
	Variant CardVariant
	Class   string
	Attrs   templ.Attributes
}

// CardClass resolves the class string of a Card.
func CardClass(variant CardVariant, override string) (string, error) {
	resolved, err := cardVariantAxis.resolve(variant)
	if err != nil {
		return "", err
	}
	variantClass, err := resolved.fragment()
	if err != nil {
		return "", err
	}
	return Cx(cardBase, variantClass, override), nil
}

// Card renders a <section> surface.
func Card(p CardProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := CardClass(p.Variant, p.Class)
		if err != nil {
			return err
		}
		return renderElement(ctx, w, "section", []attr{{"class", class}}, p.Attrs, children)
	})
}

func structural(tag, base string, p Props, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderElement(ctx, w, tag, []attr{{"class", Cx(base, p.Class)}}, p.Attrs, children)
	})
}

// CardHeader groups eyebrow, title and description above a bottom border.
func CardHeader(p Props, children ...templ.Component) templ.Component {
	return structural("div", cardHeader, p, children)
}

// CardTitle renders the card heading.
func CardTitle(p Props, children ...templ.Component) templ.Component {
	return structural("h3", cardTitle, p, children)
}

// CardEyebrow renders the small caps label above a title.
func CardEyebrow(p Props, children ...templ.Component) templ.Component {
	return structural("p", cardEyebrow, p, children)
}

// CardDescription renders supporting copy under the title.
func CardDescription(p Props, children ...templ.Component) templ.Component {
	return structural("p", cardDescription, p, children)
}

// CardContent wraps the card body.
func CardContent(p Props, children ...templ.Component) templ.Component {
	return structural("div", cardContent, p, children)
}

// CardFooter is pinned to the bottom of the card above a top border.
func CardFooter(p Props, children ...templ.Component) templ.Component {
	return structural("div", cardFooter, p, children)
}
