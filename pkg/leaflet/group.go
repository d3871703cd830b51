package leaflet

// LayerGroup is an ordered collection of layers that can be toggled as one
// overlay.
type LayerGroup struct {
	options
	layers []Layer
}

// NewLayerGroup creates an empty layer group.
func NewLayerGroup(id string) *LayerGroup {
	return &LayerGroup{options: newOptions(id)}
}

// Kind implements Layer.
func (g *LayerGroup) Kind() Kind { return KindLayerGroup }

// SetOption sets a Leaflet option.
func (g *LayerGroup) SetOption(key string, value any) *LayerGroup {
	g.set(key, value)
	return g
}

// SetAttribution replaces the attribution text.
func (g *LayerGroup) SetAttribution(attribution string) *LayerGroup {
	g.set("attribution", attribution)
	return g
}

// AddLayer appends l to the group. Adding a layer already in the group is a
// no-op.
func (g *LayerGroup) AddLayer(l Layer) *LayerGroup {
	g.attach(l)
	return g
}

// AddTo adds the group to a map.
func (g *LayerGroup) AddTo(m *Map) *LayerGroup {
	m.AddLayer(g)
	return g
}

// Layers returns the group's layers in insertion order.
func (g *LayerGroup) Layers() []Layer {
	return append([]Layer(nil), g.layers...)
}

func (g *LayerGroup) attach(l Layer) {
	if containsLayer(g.layers, l) {
		return
	}
	adopt(g, l)
	g.layers = append(g.layers, l)
}

func (g *LayerGroup) remove(l Layer) {
	g.layers = removeLayer(g.layers, l)
}

func (g *LayerGroup) expression(w *jsWriter) string {
	return "L.layerGroup([], " + w.literal(g.opts) + ")"
}

func (g *LayerGroup) node() *Node {
	n := &Node{
		Kind:        KindLayerGroup,
		ID:          g.id,
		Name:        g.Name(),
		Attribution: g.Attribution(),
	}
	for _, l := range g.layers {
		n.Children = append(n.Children, l.node())
	}
	return n
}
