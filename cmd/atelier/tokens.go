package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"atelier/internal/ui/tokens"
)

var titleCaser = cases.Title(language.English)

func newTokensCmd(registry *tokens.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Read and export design tokens",
	}
	cmd.AddCommand(newTokensGetCmd(registry))
	cmd.AddCommand(newTokensListCmd(registry))
	cmd.AddCommand(newTokensExportCmd(registry))
	return cmd
}

func newTokensGetCmd(registry *tokens.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value of one token, e.g. colors.brand.primary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := registry.Get(args[0])
			if err != nil {
				return newCommandError("get token", args[0], err, "Run 'atelier tokens list' to browse declared paths.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), value.String())
			return nil
		},
	}
}

type listOptions struct {
	swatch bool
}

func newTokensListCmd(registry *tokens.Registry) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list [group]",
		Short: "List the tokens of a group in declaration order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := ""
			if len(args) == 1 {
				group = args[0]
			}
			return runList(cmd, registry, group, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.swatch, "swatch", false, "Show a colour swatch next to hex values")
	return cmd
}

func runList(cmd *cobra.Command, registry *tokens.Registry, group string, opts *listOptions) error {
	entries, err := registry.Entries(group)
	if err != nil {
		return newCommandError("list tokens", fmt.Sprintf("reading group %q", group), err, "Pass a group path such as 'colors.brand', or no argument for the top level.")
	}

	out := cmd.OutOrStdout()
	if group != "" {
		fmt.Fprintln(out, headingStyle.Render(groupHeading(group)))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, entry := range entries {
		if entry.Group {
			fmt.Fprintf(w, "%s/\t(group)\n", entry.Key)
			continue
		}
		value := entry.Value.String()
		if opts.swatch {
			fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Key, value, swatch(value))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", entry.Key, value)
	}
	return w.Flush()
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// groupHeading titles the last segment of a dot path.
func groupHeading(path string) string {
	segment := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		segment = path[i+1:]
	}
	return titleCaser.String(segment)
}

// swatch renders a block filled with value when it is a hex colour.
func swatch(value string) string {
	if !strings.HasPrefix(value, "#") {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("    ")
}

type exportOptions struct {
	format string
}

var errUnsupportedFormat = errors.New("unsupported format")

var exportFormats = []string{"json", "yaml", "css", "tailwind"}

func newTokensExportCmd(registry *tokens.Registry) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, registry, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: "+strings.Join(exportFormats, ", "))
	return cmd
}

func runExport(cmd *cobra.Command, registry *tokens.Registry, opts *exportOptions) error {
	var (
		body []byte
		err  error
	)
	switch strings.ToLower(opts.format) {
	case "json":
		body, err = registry.MarshalJSON()
		body = append(body, '\n')
	case "yaml":
		body, err = yaml.Marshal(registry)
	case "css":
		body = []byte(registry.CSSVariables())
	case "tailwind":
		body, err = registry.TailwindConfig()
		body = append(body, '\n')
	default:
		return newCommandError("export tokens", fmt.Sprintf("format %q", opts.format), errUnsupportedFormat, "Use one of: "+strings.Join(exportFormats, ", ")+".")
	}
	if err != nil {
		return newCommandError("export tokens", "encoding "+opts.format, err, "Report this as a bug; the registry should always encode.")
	}
	_, err = cmd.OutOrStdout().Write(body)
	return err
}
