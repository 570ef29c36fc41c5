package prettyprinter

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/funvibe/irclone/internal/config"
	"github.com/funvibe/irclone/internal/remap"
	"github.com/funvibe/irclone/internal/symbols"
)

// RenderMappings writes one row per remapped symbol. Format "md" or
// "markdown" produces a Markdown table; anything else a boxed text table.
func RenderMappings(w io.Writer, mappings []remap.Mapping, format string) {
	if len(mappings) == 0 {
		_, _ = fmt.Fprintln(w, "(0 symbols)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Name", "Original", "Copy", "Copy Name"})

	for _, m := range mappings {
		t.AppendRow(table.Row{
			m.Original.Kind().String(),
			m.Original.Name(),
			symbols.ShortID(m.Original),
			symbols.ShortID(m.Replacement),
			m.Replacement.Name(),
		})
	}

	switch format {
	case config.FormatMD, config.FormatMarkdown:
		t.RenderMarkdown()
	default:
		t.Render()
	}
	_, _ = fmt.Fprintf(w, "(%d symbols)\n", len(mappings))
}
