package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# taskdeck

Tasks live on the remote service. Every change is sent immediately and the
list below is re-fetched afterwards, so what you see is always the server's
latest state.

## Keys

- ` + "`j`/`k`" + ` or arrows — move
- ` + "`a`" + ` — add a task
- ` + "`e`" + ` — edit the selected task's title
- ` + "`space`" + ` or ` + "`x`" + ` — toggle completed
- ` + "`d`" + ` — delete (asks first)
- ` + "`f`" + ` — cycle filter (all, pending, completed)
- ` + "`1`/`2`/`3`" + ` — jump to a filter
- ` + "`r`" + ` — refresh from the service
- ` + "`D`" + ` — toggle dark mode (persisted)
- ` + "`q`" + ` — quit
`

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width + style. Creating a renderer with
	// WithAutoStyle can trigger terminal queries that block on some
	// terminals, so a fixed style is chosen up front and cached.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderHelp(width int) string {
	return renderMarkdown(helpMarkdown, width)
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
