// render.go serializes a Map to an HTML element plus inline Leaflet JS.
package leaflet

import (
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strings"
)

// Script and stylesheet locations for standalone pages.
const (
	LeafletCSS     = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	LeafletJS      = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	GoogleMutantJS = "https://unpkg.com/leaflet.gridlayer.googlemutant@0.14.1/dist/Leaflet.GoogleMutant.js"
	GoogleMapsJS   = "https://maps.googleapis.com/maps/api/js"
)

// HTML renders the map as a container element followed by a script that
// builds it. Output is deterministic for a given graph.
func (m *Map) HTML() string {
	w := newJSWriter()

	fmt.Fprintf(&w.sb, "\tvar map = L.map(%s, %s);\n", w.literal(m.id), w.literal(map[string]any{
		"center": []float64{m.center.Latitude, m.center.Longitude},
		"zoom":   m.zoom,
	}))

	for _, l := range m.layers {
		name := w.declare(l)
		fmt.Fprintf(&w.sb, "\t%s.addTo(map);\n", name)
	}

	for _, c := range m.controls {
		expr := c.expression(w)
		fmt.Fprintf(&w.sb, "\t%s.addTo(map);\n", expr)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<div id="%s" class="cn-map" style="height: %s; width: %s;"></div>`+"\n",
		html.EscapeString(m.id), html.EscapeString(m.height), html.EscapeString(m.width))
	sb.WriteString("<script>\n(function () {\n")
	sb.WriteString(w.sb.String())
	sb.WriteString("})();\n</script>\n")
	return sb.String()
}

// String implements fmt.Stringer by rendering HTML.
func (m *Map) String() string {
	return m.HTML()
}

// Assets returns the <link> and <script> tags a page needs before any map
// markup. The Google Maps scripts are only included when browserKey is set.
func Assets(browserKey string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<link rel="stylesheet" href="%s">`+"\n", LeafletCSS)
	fmt.Fprintf(&sb, `<script src="%s"></script>`+"\n", LeafletJS)
	if browserKey != "" {
		fmt.Fprintf(&sb, `<script src="%s?key=%s"></script>`+"\n", GoogleMapsJS, url.QueryEscape(browserKey))
		fmt.Fprintf(&sb, `<script src="%s"></script>`+"\n", GoogleMutantJS)
	}
	return sb.String()
}

// jsWriter accumulates variable declarations while a map renders.
type jsWriter struct {
	sb   strings.Builder
	vars map[Layer]string
	n    int
}

func newJSWriter() *jsWriter {
	return &jsWriter{vars: make(map[Layer]string)}
}

// declare writes a variable for l (and, for groups, its children) once and
// returns the variable name.
func (w *jsWriter) declare(l Layer) string {
	if name, ok := w.vars[l]; ok {
		return name
	}

	name := fmt.Sprintf("layer%d", w.n)
	w.n++
	w.vars[l] = name

	expr := l.expression(w)
	fmt.Fprintf(&w.sb, "\tvar %s = %s;\n", name, expr)

	if g, ok := l.(*LayerGroup); ok {
		for _, child := range g.layers {
			childName := w.declare(child)
			fmt.Fprintf(&w.sb, "\t%s.addTo(%s);\n", childName, name)
		}
	}

	return name
}

// layerSet renders an object literal mapping control labels to layer variables.
func (w *jsWriter) layerSet(layers []Layer) string {
	if len(layers) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(layers))
	for _, l := range layers {
		parts = append(parts, w.literal(label(l))+": "+w.declare(l))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// literal encodes v as a JS literal. encoding/json escapes <, > and & so the
// result is safe inside a <script> element.
func (w *jsWriter) literal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
