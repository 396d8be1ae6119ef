package ui

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Props carries the caller override class and native passthrough attributes
// for components that have no variant axis.
type Props struct {
	Class string
	Attrs templ.Attributes
}

type attr struct {
	name  string
	value any
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// Element renders an arbitrary element with a class string, passthrough
// attributes and children. Page templates use it for plain markup around the
// library components.
func Element(tag, class string, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var controlled []attr
		if class != "" {
			controlled = append(controlled, attr{"class", class})
		}
		return renderElement(ctx, w, tag, controlled, attrs, children)
	})
}

// Text renders s with HTML escaping.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders components one after another.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderChildren(ctx, w, children)
	})
}

func renderElement(ctx context.Context, w io.Writer, tag string, controlled []attr, passthrough templ.Attributes, children []templ.Component) error {
	if err := writeStart(w, tag, controlled, passthrough); err != nil {
		return err
	}
	if _, void := voidElements[tag]; void {
		return nil
	}
	if err := renderChildren(ctx, w, children); err != nil {
		return err
	}
	return writeEnd(w, tag)
}

// writeStart writes the opening tag. Controlled attributes come first in the
// given order; passthrough attributes follow in name order and never replace a
// controlled attribute.
func writeStart(w io.Writer, tag string, controlled []attr, passthrough templ.Attributes) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)

	taken := make(map[string]struct{}, len(controlled))
	for _, a := range controlled {
		taken[a.name] = struct{}{}
		writeAttr(&b, a.name, a.value)
	}
	for _, name := range slices.Sorted(maps.Keys(passthrough)) {
		if _, ok := taken[name]; ok {
			continue
		}
		writeAttr(&b, name, passthrough[name])
	}
	b.WriteByte('>')

	_, err := io.WriteString(w, b.String())
	return err
}

func writeAttr(b *strings.Builder, name string, value any) {
	var text string
	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			b.WriteByte(' ')
			b.WriteString(name)
		}
		return
	case string:
		text = v
	case int:
		text = strconv.Itoa(v)
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprint(v)
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(text))
	b.WriteByte('"')
}

func writeEnd(w io.Writer, tag string) error {
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

func renderChildren(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
