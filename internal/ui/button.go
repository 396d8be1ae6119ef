package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ButtonVariant selects the emphasis of a Button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota + 1
	ButtonSecondary
	ButtonTonal
	ButtonGhost
	ButtonDestructive
)

// ButtonSize selects the height, padding and type size of a Button.
type ButtonSize int

const (
	SizeSM ButtonSize = iota + 1
	SizeMD
	SizeLG
)

// DefaultLoadingLabel is shown next to the spinner while a Button is loading.
const DefaultLoadingLabel = "Working…"

var buttonVariantAxis = axis[ButtonVariant]{
	component: "button",
	name:      "variant",
	fallback:  ButtonPrimary,
	values:    []ButtonVariant{ButtonPrimary, ButtonSecondary, ButtonTonal, ButtonGhost, ButtonDestructive},
	labels:    []string{"primary", "secondary", "tonal", "ghost", "destructive"},
}

var buttonSizeAxis = axis[ButtonSize]{
	component: "button",
	name:      "size",
	fallback:  SizeMD,
	values:    []ButtonSize{SizeSM, SizeMD, SizeLG},
	labels:    []string{"sm", "md", "lg"},
}

func (v ButtonVariant) String() string { return buttonVariantAxis.label(v) }
func (s ButtonSize) String() string    { return buttonSizeAxis.label(s) }

// ButtonVariants lists every declared variant.
func ButtonVariants() []ButtonVariant { return buttonVariantAxis.all() }

// ButtonSizes lists every declared size.
func ButtonSizes() []ButtonSize { return buttonSizeAxis.all() }

// ParseButtonVariant converts a variant name. The empty string selects the
// default.
func ParseButtonVariant(s string) (ButtonVariant, error) { return buttonVariantAxis.parse(s) }

// ParseButtonSize converts a size name. The empty string selects the default.
func ParseButtonSize(s string) (ButtonSize, error) { return buttonSizeAxis.parse(s) }

const (
	buttonBase = "inline-flex items-center justify-center gap-2 rounded-full font-medium tracking-[0.01em] transition-colors duration-150 focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2 focus-visible:ring-offset-atelier-paper dark:focus-visible:ring-offset-atelier-night"

	buttonDisabled = "cursor-not-allowed opacity-60"
	buttonLoading  = "pointer-events-none select-none"

	buttonSpinner = "h-4 w-4 animate-spin rounded-full border-2 border-current border-t-transparent"
)

func (v ButtonVariant) fragment() (string, error) {
	switch v {
	case ButtonPrimary:
		return "bg-atelier-terracotta text-white shadow-sm hover:bg-atelier-terracotta-strong focus-visible:ring-atelier-terracotta dark:text-atelier-parchment", nil
	case ButtonSecondary:
		return "bg-atelier-moss text-white shadow-sm hover:bg-atelier-moss-strong focus-visible:ring-atelier-moss dark:text-atelier-parchment", nil
	case ButtonTonal:
		return "bg-atelier-parchment text-atelier-ink hover:bg-atelier-sand focus-visible:ring-atelier-terracotta dark:bg-atelier-charcoal dark:text-atelier-parchment dark:hover:bg-atelier-night", nil
	case ButtonGhost:
		return "bg-transparent text-atelier-ink hover:bg-atelier-mist focus-visible:ring-atelier-shadow dark:text-atelier-parchment dark:hover:bg-atelier-charcoal", nil
	case ButtonDestructive:
		return "bg-atelier-berry text-white shadow-sm hover:bg-atelier-berry-strong focus-visible:ring-atelier-berry", nil
	}
	return "", buttonVariantAxis.unknown(v.String())
}

func (s ButtonSize) fragment() (string, error) {
	switch s {
	case SizeSM:
		return "h-9 px-4 text-sm", nil
	case SizeMD:
		return "h-11 px-5 text-sm", nil
	case SizeLG:
		return "h-12 px-6 text-base", nil
	}
	return "", buttonSizeAxis.unknown(s.String())
}

// ButtonProps configures a Button. Zero values select the axis defaults
// (primary, md).
type ButtonProps struct {
	Variant      ButtonVariant
	Size         ButtonSize
	Loading      bool
	LoadingLabel string
	Disabled     bool
	// Type defaults to "button".
	Type  string
	Class string
	Attrs templ.Attributes
}

// ButtonClass resolves the class string of a Button: base, variant, size,
// disabled and loading state, then the caller's Class.
func ButtonClass(p ButtonProps) (string, error) {
	variant, err := buttonVariantAxis.resolve(p.Variant)
	if err != nil {
		return "", err
	}
	size, err := buttonSizeAxis.resolve(p.Size)
	if err != nil {
		return "", err
	}
	variantClass, err := variant.fragment()
	if err != nil {
		return "", err
	}
	sizeClass, err := size.fragment()
	if err != nil {
		return "", err
	}
	return Cx(
		buttonBase,
		variantClass,
		sizeClass,
		When(p.Disabled || p.Loading, buttonDisabled),
		When(p.Loading, buttonLoading),
		p.Class,
	), nil
}

// Button renders a <button>. Loading forces the disabled state, marks the
// element busy and replaces children with a spinner and the loading label.
func Button(p ButtonProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := ButtonClass(p)
		if err != nil {
			return err
		}
		variant, _ := buttonVariantAxis.resolve(p.Variant)

		buttonType := p.Type
		if buttonType == "" {
			buttonType = "button"
		}

		controlled := []attr{
			{"type", buttonType},
			{"class", class},
			{"data-variant", variant.String()},
			{"disabled", p.Disabled || p.Loading},
		}
		if p.Loading {
			controlled = append(controlled, attr{"aria-busy", "true"})
		}

		body := children
		if p.Loading {
			label := p.LoadingLabel
			if label == "" {
				label = DefaultLoadingLabel
			}
			body = []templ.Component{
				Element("span", buttonSpinner, templ.Attributes{"aria-hidden": "true"}),
				Element("span", "", nil, Text(label)),
			}
		}
		return renderElement(ctx, w, "button", controlled, p.Attrs, body)
	})
}
