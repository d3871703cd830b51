package mapblock

import (
	"github.com/open-cli-collective/cn-mapblock/pkg/shortcode"
)

// Expander replaces [cn-mapblock] shortcodes in a document.
type Expander struct {
	builder *Builder
}

// NewExpander creates an expander that builds maps with b.
func NewExpander(b *Builder) *Expander {
	return &Expander{builder: b}
}

// Expand replaces every top-level [cn-mapblock]...[/cn-mapblock] in document
// with the map's HTML. Everything else is left untouched. It returns the
// warnings of every build in document order.
func (e *Expander) Expand(document string) (string, []string) {
	var warnings []string
	out := shortcode.Replace(document, TagBlock, func(m shortcode.Match) string {
		res := e.builder.Build(m.Atts(), m.Inner)
		warnings = append(warnings, res.Warnings...)
		return res.Map.HTML()
	})
	return out, warnings
}

// Blocks builds every top-level [cn-mapblock] in document without
// serializing it.
func (e *Expander) Blocks(document string) []*Result {
	var results []*Result
	shortcode.Replace(document, TagBlock, func(m shortcode.Match) string {
		results = append(results, e.builder.Build(m.Atts(), m.Inner))
		return ""
	})
	return results
}

// HasShortcode reports whether document contains a [cn-mapblock] shortcode,
// and so needs the Leaflet assets.
func HasShortcode(document string) bool {
	return shortcode.Has(document, TagBlock)
}
