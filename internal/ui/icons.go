package ui

import "github.com/a-h/templ"

const (
	iconOpen  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.8" class="h-4 w-4" aria-hidden="true">`
	iconClose = `</svg>`
)

func toneIcon(t Tone) templ.Component {
	var paths string
	switch t {
	case ToneSuccess:
		paths = `<path d="M5.5 12.5 10 17l8.5-9" stroke-linecap="round" stroke-linejoin="round"></path>`
	case ToneWarning:
		paths = `<path d="M12 6.5 4.5 19h15L12 6.5Z" stroke-linecap="round" stroke-linejoin="round"></path>` +
			`<path d="M12 11v3" stroke-linecap="round" stroke-linejoin="round"></path>` +
			`<path d="M12 17.2v.1" stroke-linecap="round" stroke-linejoin="round"></path>`
	case ToneDanger:
		paths = `<path d="M8.5 8.5 15.5 15.5" stroke-linecap="round" stroke-linejoin="round"></path>` +
			`<path d="m15.5 8.5-7 7" stroke-linecap="round" stroke-linejoin="round"></path>`
	default:
		paths = `<circle cx="12" cy="12" r="9" stroke-linecap="round" stroke-linejoin="round"></circle>` +
			`<path d="M12 8.5v.2" stroke-linecap="round" stroke-linejoin="round"></path>` +
			`<path d="M11.1 11.5h1.2v4" stroke-linecap="round" stroke-linejoin="round"></path>`
	}
	return templ.Raw(iconOpen + paths + iconClose)
}
