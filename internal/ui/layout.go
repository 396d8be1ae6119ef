package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Space selects the vertical rhythm of a Stack.
type Space int

const (
	SpaceTight Space = iota + 1
	SpaceBase
	SpaceRelaxed
)

// Surface selects the background of a NotebookSection.
type Surface int

const (
	SurfacePaper Surface = iota + 1
	SurfaceMist
	SurfaceNight
)

// Columns is a ResponsiveGrid column count between 1 and 4.
type Columns int

const (
	Columns1 Columns = iota + 1
	Columns2
	Columns3
	Columns4
)

var spaceAxis = axis[Space]{
	component: "stack",
	name:      "space",
	fallback:  SpaceBase,
	values:    []Space{SpaceTight, SpaceBase, SpaceRelaxed},
	labels:    []string{"tight", "base", "relaxed"},
}

var surfaceAxis = axis[Surface]{
	component: "notebook section",
	name:      "surface",
	fallback:  SurfacePaper,
	values:    []Surface{SurfacePaper, SurfaceMist, SurfaceNight},
	labels:    []string{"paper", "mist", "night"},
}

var columnValues = []Columns{Columns1, Columns2, Columns3, Columns4}
var columnLabels = []string{"1", "2", "3", "4"}

var smColumnsAxis = axis[Columns]{
	component: "responsive grid",
	name:      "sm",
	fallback:  Columns2,
	values:    columnValues,
	labels:    columnLabels,
}

var lgColumnsAxis = axis[Columns]{
	component: "responsive grid",
	name:      "lg",
	fallback:  Columns3,
	values:    columnValues,
	labels:    columnLabels,
}

func (s Space) String() string   { return spaceAxis.label(s) }
func (s Surface) String() string { return surfaceAxis.label(s) }
func (c Columns) String() string {
	if c >= Columns1 && c <= Columns4 {
		return strconv.Itoa(int(c))
	}
	return "Columns(" + strconv.Itoa(int(c)) + ")"
}

// Spaces lists every declared stack spacing.
func Spaces() []Space { return spaceAxis.all() }

// Surfaces lists every declared section surface.
func Surfaces() []Surface { return surfaceAxis.all() }

// ColumnCounts lists every declared grid column count.
func ColumnCounts() []Columns { return smColumnsAxis.all() }

// ParseSpace converts a spacing name. The empty string selects base.
func ParseSpace(s string) (Space, error) { return spaceAxis.parse(s) }

// ParseSurface converts a surface name. The empty string selects paper.
func ParseSurface(s string) (Surface, error) { return surfaceAxis.parse(s) }

// ParseColumns converts a column count for the named breakpoint ("sm" or
// "lg"). The empty string selects that breakpoint's default.
func ParseColumns(breakpoint, s string) (Columns, error) {
	if breakpoint == "lg" {
		return lgColumnsAxis.parse(s)
	}
	return smColumnsAxis.parse(s)
}

const (
	stackBase   = "flex flex-col"
	sectionBase = "relative rounded-3xl border-2 border-dashed px-6 py-8 shadow-sm sm:px-9 sm:py-10"
	sectionRule = `before:absolute before:inset-x-6 before:top-4 before:h-px before:bg-atelier-haze/60 before:content-[""] dark:before:bg-atelier-shadow/60`
	gridBase    = "grid gap-5"
)

func (s Space) fragment() (string, error) {
	switch s {
	case SpaceTight:
		return "space-y-3", nil
	case SpaceBase:
		return "space-y-5", nil
	case SpaceRelaxed:
		return "space-y-7", nil
	}
	return "", spaceAxis.unknown(s.String())
}

func (s Surface) fragment() (string, error) {
	switch s {
	case SurfacePaper:
		return "bg-atelier-paper text-atelier-ink border-atelier-sand", nil
	case SurfaceMist:
		return "bg-atelier-mist text-atelier-ink border-atelier-haze", nil
	case SurfaceNight:
		return "bg-atelier-night text-atelier-parchment border-atelier-charcoal", nil
	}
	return "", surfaceAxis.unknown(s.String())
}

func baseColumns(c Columns) (string, error) {
	switch c {
	case Columns1:
		return "grid-cols-1", nil
	case Columns2:
		return "grid-cols-2", nil
	case Columns3:
		return "grid-cols-3", nil
	case Columns4:
		return "grid-cols-4", nil
	}
	return "", smColumnsAxis.unknown(c.String())
}

func smColumns(c Columns) (string, error) {
	switch c {
	case Columns1:
		return "sm:grid-cols-1", nil
	case Columns2:
		return "sm:grid-cols-2", nil
	case Columns3:
		return "sm:grid-cols-3", nil
	case Columns4:
		return "sm:grid-cols-4", nil
	}
	return "", smColumnsAxis.unknown(c.String())
}

func lgColumns(c Columns) (string, error) {
	switch c {
	case Columns1:
		return "lg:grid-cols-1", nil
	case Columns2:
		return "lg:grid-cols-2", nil
	case Columns3:
		return "lg:grid-cols-3", nil
	case Columns4:
		return "lg:grid-cols-4", nil
	}
	return "", lgColumnsAxis.unknown(c.String())
}

// StackProps configures a Stack. The zero Space selects base.
type StackProps struct {
	Space Space
	Class string
	Attrs templ.Attributes
}

// SectionProps configures a NotebookSection. The zero Surface selects paper.
type SectionProps struct {
	Surface Surface
	Class   string
	Attrs   templ.Attributes
}

// GridProps configures a ResponsiveGrid. Zero counts select sm=2 and lg=3.
type GridProps struct {
	SM    Columns
	LG    Columns
	Class string
	Attrs templ.Attributes
}

// StackClass resolves the class string of a Stack.
func StackClass(space Space, override string) (string, error) {
	resolved, err := spaceAxis.resolve(space)
	if err != nil {
		return "", err
	}
	spaceClass, err := resolved.fragment()
	if err != nil {
		return "", err
	}
	return Cx(stackBase, spaceClass, override), nil
}

// SectionClass resolves the class string of a NotebookSection.
func SectionClass(surface Surface, override string) (string, error) {
	resolved, err := surfaceAxis.resolve(surface)
	if err != nil {
		return "", err
	}
	surfaceClass, err := resolved.fragment()
	if err != nil {
		return "", err
	}
	return Cx(sectionBase, surfaceClass, sectionRule, override), nil
}

// GridClass resolves the class string of a ResponsiveGrid: one column
// unconditionally, then the sm and lg overrides.
func GridClass(sm, lg Columns, override string) (string, error) {
	smResolved, err := smColumnsAxis.resolve(sm)
	if err != nil {
		return "", err
	}
	lgResolved, err := lgColumnsAxis.resolve(lg)
	if err != nil {
		return "", err
	}
	base, err := baseColumns(Columns1)
	if err != nil {
		return "", err
	}
	smClass, err := smColumns(smResolved)
	if err != nil {
		return "", err
	}
	lgClass, err := lgColumns(lgResolved)
	if err != nil {
		return "", err
	}
	return Cx(gridBase, base, smClass, lgClass, override), nil
}

// Stack renders a vertical flex column.
func Stack(p StackProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := StackClass(p.Space, p.Class)
		if err != nil {
			return err
		}
		return renderElement(ctx, w, "div", []attr{{"class", class}}, p.Attrs, children)
	})
}

// NotebookSection renders a dashed, ruled <section>.
func NotebookSection(p SectionProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := SectionClass(p.Surface, p.Class)
		if err != nil {
			return err
		}
		return renderElement(ctx, w, "section", []attr{{"class", class}}, p.Attrs, children)
	})
}

// ResponsiveGrid renders a grid with independent sm and lg column counts.
func ResponsiveGrid(p GridProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := GridClass(p.SM, p.LG, p.Class)
		if err != nil {
			return err
		}
		return renderElement(ctx, w, "div", []attr{{"class", class}}, p.Attrs, children)
	})
}
