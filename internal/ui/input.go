package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DefaultOptionalLabel marks fields that are not required.
const DefaultOptionalLabel = "Optional"

const (
	fieldWrapper  = "flex flex-col gap-2"
	fieldLabel    = "flex items-center gap-2 text-xs font-semibold uppercase tracking-[0.08em] text-atelier-shadow dark:text-atelier-sage"
	fieldOptional = "text-[0.65rem] font-normal normal-case tracking-normal text-atelier-shadow/70 dark:text-atelier-haze/80"

	inputBase   = "w-full rounded-xl border px-4 py-2.5 text-base shadow-sm outline-none transition placeholder:text-atelier-shadow/60 focus-visible:ring-2 focus-visible:ring-offset-2 ring-offset-atelier-paper dark:ring-offset-atelier-night disabled:cursor-not-allowed disabled:opacity-70"
	inputActive = "border-atelier-sand bg-white text-atelier-ink focus:border-atelier-terracotta focus-visible:ring-atelier-terracotta dark:border-atelier-shadow dark:bg-atelier-charcoal dark:text-atelier-parchment"
	inputError  = "border-atelier-berry text-atelier-ink focus:border-atelier-berry focus-visible:ring-atelier-berry dark:border-atelier-berry dark:text-atelier-parchment"

	assistiveBase   = "text-sm leading-relaxed"
	assistiveHelper = "text-atelier-shadow dark:text-atelier-haze"
	assistiveError  = "text-atelier-berry"
)

// InputFieldProps configures an InputField.
type InputFieldProps struct {
	// ID is generated from Name or Label when empty.
	ID          string
	Name        string
	Type        string
	Value       string
	Placeholder string

	Label      string
	HelperText string
	// Error switches the field to its error treatment and takes the
	// assistive-text slot from HelperText.
	Error     string
	HideLabel bool
	// OptionalLabel is shown next to the label of fields that are not
	// required. nil selects DefaultOptionalLabel; a pointer to "" hides it.
	OptionalLabel *string

	Required  bool
	Disabled  bool
	ReadOnly  bool
	Autofocus bool

	// Class overrides apply to the <input> element.
	Class string
	Attrs templ.Attributes
}

// InputClass resolves the <input> class string. The error fragment replaces
// the default fragment instead of extending it.
func InputClass(hasError bool, override string) string {
	state := inputActive
	if hasError {
		state = inputError
	}
	return Cx(inputBase, state, override)
}

// assistiveText returns the single message announced for the field and
// whether it is an error.
func (p InputFieldProps) assistiveText() (string, bool) {
	if p.Error != "" {
		return p.Error, true
	}
	return p.HelperText, false
}

func (p InputFieldProps) optionalText() string {
	if p.Required {
		return ""
	}
	if p.OptionalLabel == nil {
		return DefaultOptionalLabel
	}
	return *p.OptionalLabel
}

// InputField renders a labelled text input with one assistive message. The
// label's for attribute and the input's aria-describedby both derive from the
// input id.
func InputField(p InputFieldProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := p.ID
		if id == "" {
			hint := p.Name
			if hint == "" {
				hint = p.Label
			}
			id = generatedID(ctx, hint)
		}

		message, isError := p.assistiveText()
		descriptionID := ""
		if message != "" {
			descriptionID = id + "-description"
		}

		inputType := p.Type
		if inputType == "" {
			inputType = "text"
		}

		var parts []templ.Component
		if p.Label != "" {
			labelChildren := []templ.Component{Element("span", "", nil, Text(p.Label))}
			if optional := p.optionalText(); optional != "" {
				labelChildren = append(labelChildren, Element("span", fieldOptional, nil, Text(optional)))
			}
			parts = append(parts, Element("label", Cx(fieldLabel, When(p.HideLabel, "sr-only")), templ.Attributes{"for": id}, labelChildren...))
		}

		parts = append(parts, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			controlled := []attr{
				{"id", id},
				{"type", inputType},
				{"class", InputClass(isError, p.Class)},
			}
			for _, optional := range []attr{{"name", p.Name}, {"value", p.Value}, {"placeholder", p.Placeholder}} {
				if optional.value != "" {
					controlled = append(controlled, optional)
				}
			}
			controlled = append(controlled,
				attr{"required", p.Required},
				attr{"disabled", p.Disabled},
				attr{"readonly", p.ReadOnly},
				attr{"autofocus", p.Autofocus},
			)
			if isError {
				controlled = append(controlled, attr{"aria-invalid", "true"})
			}
			if descriptionID != "" {
				controlled = append(controlled, attr{"aria-describedby", descriptionID})
			}
			return renderElement(ctx, w, "input", controlled, p.Attrs, nil)
		}))

		if message != "" {
			tone := assistiveHelper
			if isError {
				tone = assistiveError
			}
			parts = append(parts, Element("p", Cx(assistiveBase, tone), templ.Attributes{"id": descriptionID}, Text(message)))
		}

		return renderElement(ctx, w, "div", []attr{{"class", fieldWrapper}}, nil, parts)
	})
}

// OptionalLabel returns a pointer suitable for InputFieldProps.OptionalLabel.
func OptionalLabel(s string) *string {
	return &s
}
