package layout

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/a-h/templ"

	"atelier/internal/ui"
	"atelier/internal/ui/tokens"
	"atelier/internal/views/theme"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@1.9.12"
	fontsURL    = "https://fonts.googleapis.com/css2?family=Fraunces:opsz,wght@9..144,400;9..144,600&family=Work+Sans:wght@400;500;600&display=swap"

	mainClass = "mx-auto flex w-full max-w-5xl flex-1 flex-col gap-6 p-6"
)

// Page carries the document metadata of one rendered page.
type Page struct {
	Title       string
	Description string
	Theme       theme.Theme
}

var tailwindConfig = sync.OnceValues(func() ([]byte, error) {
	return tokens.Atelier().TailwindConfig()
})

// Layout renders the HTML document shell around content. The Tailwind theme
// and the CSS custom properties are generated from the token registry.
func Layout(page Page, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		config, err := tailwindConfig()
		if err != nil {
			return fmt.Errorf("build tailwind config: %w", err)
		}

		htmlAttrs := templ.Attributes{"lang": "en"}
		if page.Theme.HTMLClass != "" {
			htmlAttrs["class"] = page.Theme.HTMLClass
		}

		head := ui.Element("head", "", nil,
			ui.Element("meta", "", templ.Attributes{"charset": "utf-8"}),
			ui.Element("meta", "", templ.Attributes{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
			ui.Element("title", "", nil, ui.Text(page.Title)),
			description(page.Description),
			ui.Element("link", "", templ.Attributes{"rel": "preconnect", "href": "https://fonts.googleapis.com"}),
			ui.Element("link", "", templ.Attributes{"rel": "stylesheet", "href": fontsURL}),
			ui.Element("script", "", templ.Attributes{"src": tailwindCDN}),
			ui.Element("script", "", nil, templ.Raw("tailwind.config = "+string(config)+";")),
			ui.Element("script", "", templ.Attributes{"src": htmxCDN, "defer": true}),
			ui.Element("style", "", nil, templ.Raw(tokens.Atelier().CSSVariables())),
		)

		body := ui.Element("body", page.Theme.BodyClass, nil,
			ui.Element("main", mainClass, nil, content),
		)

		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		return ui.Element("html", "", htmlAttrs, head, body).Render(ctx, w)
	})
}

func description(text string) templ.Component {
	if text == "" {
		return nil
	}
	return ui.Element("meta", "", templ.Attributes{"name": "description", "content": text})
}
