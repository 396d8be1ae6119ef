package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Tone is the semantic feedback axis of alert-style components.
type Tone int

const (
	ToneInfo Tone = iota + 1
	ToneSuccess
	ToneWarning
	ToneDanger
)

var toneAxis = axis[Tone]{
	component: "alert",
	name:      "tone",
	fallback:  ToneInfo,
	values:    []Tone{ToneInfo, ToneSuccess, ToneWarning, ToneDanger},
	labels:    []string{"info", "success", "warning", "danger"},
}

func (t Tone) String() string { return toneAxis.label(t) }

// Tones lists every declared tone.
func Tones() []Tone { return toneAxis.all() }

// ParseTone converts a tone name. The empty string selects info.
func ParseTone(s string) (Tone, error) { return toneAxis.parse(s) }

const (
	alertBase     = "rounded-2xl border px-4 py-3 shadow-sm sm:px-5 sm:py-4"
	alertLayout   = "flex items-start gap-3"
	alertIconWell = "mt-0.5 flex h-9 w-9 shrink-0 items-center justify-center rounded-full border border-current/30 bg-white/80 text-current dark:bg-atelier-night/60"
	alertBody     = "flex flex-col gap-1 text-current"
	alertTitle    = "font-semibold text-base tracking-[0.01em]"
	alertText     = "text-sm leading-relaxed opacity-90"
)

func (t Tone) fragment() (string, error) {
	switch t {
	case ToneInfo:
		return "border-atelier-shadow/20 bg-atelier-mist text-atelier-ink dark:border-atelier-shadow/50 dark:bg-atelier-charcoal/80 dark:text-atelier-parchment", nil
	case ToneSuccess:
		return "border-atelier-moss/30 bg-atelier-moss/10 text-atelier-moss dark:border-atelier-sage/40 dark:bg-atelier-moss-strong/20 dark:text-atelier-sage", nil
	case ToneWarning:
		return "border-atelier-sun/30 bg-atelier-sun/10 text-atelier-sun dark:border-atelier-sun/40 dark:bg-atelier-sun/20 dark:text-atelier-highlight", nil
	case ToneDanger:
		return "border-atelier-berry/30 bg-atelier-berry/10 text-atelier-berry dark:border-atelier-berry/40 dark:bg-atelier-berry-strong/20 dark:text-atelier-berry", nil
	}
	return "", toneAxis.unknown(t.String())
}

// role announced by assistive technology when the caller supplies none
func (t Tone) role() string {
	if t == ToneDanger {
		return "alert"
	}
	return "status"
}

// AlertProps configures an Alert. Title and Description are optional.
type AlertProps struct {
	Tone        Tone
	Title       string
	Description string
	// Icon replaces the tone's default icon.
	Icon templ.Component
	// Role overrides the tone-derived role ("alert" for danger, "status"
	// otherwise).
	Role  string
	Class string
	Attrs templ.Attributes
}

// AlertClass resolves the container class string for tone and override.
func AlertClass(tone Tone, override string) (string, error) {
	resolved, err := toneAxis.resolve(tone)
	if err != nil {
		return "", err
	}
	toneClass, err := resolved.fragment()
	if err != nil {
		return "", err
	}
	return Cx(alertBase, toneClass, override), nil
}

// Alert renders a feedback message. Children are appended after the
// description.
func Alert(p AlertProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := AlertClass(p.Tone, p.Class)
		if err != nil {
			return err
		}
		tone, _ := toneAxis.resolve(p.Tone)

		role := p.Role
		if role == "" {
			role = tone.role()
		}

		icon := p.Icon
		if icon == nil {
			icon = toneIcon(tone)
		}

		body := make([]templ.Component, 0, len(children)+2)
		if p.Title != "" {
			body = append(body, Element("p", alertTitle, nil, Text(p.Title)))
		}
		if p.Description != "" {
			body = append(body, Element("p", alertText, nil, Text(p.Description)))
		}
		body = append(body, children...)

		content := Element("div", alertLayout, nil,
			Element("span", alertIconWell, nil, icon),
			Element("div", alertBody, nil, body...),
		)
		return renderElement(ctx, w, "div", []attr{{"role", role}, {"class", class}}, p.Attrs, []templ.Component{content})
	})
}
