package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"atelier/internal/ui"
)

type classesOptions struct {
	variant  string
	size     string
	tone     string
	surface  string
	space    string
	sm       string
	lg       string
	class    string
	loading  bool
	disabled bool
	hasError bool
}

var classComponents = []string{"button", "alert", "card", "input", "stack", "section", "grid"}

var errUnknownComponent = errors.New("unknown component")

func newClassesCmd() *cobra.Command {
	opts := &classesOptions{}
	cmd := &cobra.Command{
		Use:       "classes <component>",
		Short:     "Print the resolved class string of a component",
		Long:      "Resolve a component's class string for the given variant selections. Components: " + strings.Join(classComponents, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: classComponents,
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := resolveClasses(args[0], opts)
			if err != nil {
				return newCommandError("resolve classes", args[0], err, "Run 'atelier classes --help' for the accepted components and values.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), class)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.variant, "variant", "", "Button or card variant")
	flags.StringVar(&opts.size, "size", "", "Button size: sm, md, lg")
	flags.StringVar(&opts.tone, "tone", "", "Alert tone: info, success, warning, danger")
	flags.StringVar(&opts.surface, "surface", "", "Section surface: paper, mist, night")
	flags.StringVar(&opts.space, "space", "", "Stack spacing: tight, base, relaxed")
	flags.StringVar(&opts.sm, "sm", "", "Grid columns from the sm breakpoint (1-4)")
	flags.StringVar(&opts.lg, "lg", "", "Grid columns from the lg breakpoint (1-4)")
	flags.StringVar(&opts.class, "class", "", "Caller classes appended last")
	flags.BoolVar(&opts.loading, "loading", false, "Button loading state")
	flags.BoolVar(&opts.disabled, "disabled", false, "Button disabled state")
	flags.BoolVar(&opts.hasError, "error", false, "Input error state")

	return cmd
}

func resolveClasses(component string, opts *classesOptions) (string, error) {
	switch strings.ToLower(strings.TrimSpace(component)) {
	case "button":
		variant, err := ui.ParseButtonVariant(opts.variant)
		if err != nil {
			return "", err
		}
		size, err := ui.ParseButtonSize(opts.size)
		if err != nil {
			return "", err
		}
		return ui.ButtonClass(ui.ButtonProps{
			Variant:  variant,
			Size:     size,
			Loading:  opts.loading,
			Disabled: opts.disabled,
			Class:    opts.class,
		})
	case "alert":
		tone, err := ui.ParseTone(opts.tone)
		if err != nil {
			return "", err
		}
		return ui.AlertClass(tone, opts.class)
	case "card":
		variant, err := ui.ParseCardVariant(opts.variant)
		if err != nil {
			return "", err
		}
		return ui.CardClass(variant, opts.class)
	case "input":
		return ui.InputClass(opts.hasError, opts.class), nil
	case "stack":
		space, err := ui.ParseSpace(opts.space)
		if err != nil {
			return "", err
		}
		return ui.StackClass(space, opts.class)
	case "section":
		surface, err := ui.ParseSurface(opts.surface)
		if err != nil {
			return "", err
		}
		return ui.SectionClass(surface, opts.class)
	case "grid":
		sm, err := ui.ParseColumns("sm", opts.sm)
		if err != nil {
			return "", err
		}
		lg, err := ui.ParseColumns("lg", opts.lg)
		if err != nil {
			return "", err
		}
		return ui.GridClass(sm, lg, opts.class)
	}
	return "", fmt.Errorf("%w %q", errUnknownComponent, component)
}
