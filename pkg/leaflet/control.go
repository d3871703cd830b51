package leaflet

// Control is a UI widget attached to a map.
type Control interface {
	ID() string
	Kind() Kind

	expression(w *jsWriter) string
	node() *Node
}

// LayerControl lets the reader pick one base layer and toggle overlays.
type LayerControl struct {
	id         string
	collapsed  bool
	baseLayers []Layer
	overlays   []Layer
}

// NewLayerControl creates a layer control. Leaflet collapses it by default.
func NewLayerControl(id string) *LayerControl {
	return &LayerControl{id: id, collapsed: true}
}

// ID returns the control id.
func (c *LayerControl) ID() string { return c.id }

// Kind implements Control.
func (c *LayerControl) Kind() Kind { return KindLayerControl }

// Collapsed reports whether the control renders collapsed.
func (c *LayerControl) Collapsed() bool { return c.collapsed }

// SetCollapsed sets whether the control renders collapsed.
func (c *LayerControl) SetCollapsed(collapsed bool) *LayerControl {
	c.collapsed = collapsed
	return c
}

// AddBaseLayer offers l as a mutually exclusive base layer.
func (c *LayerControl) AddBaseLayer(l Layer) *LayerControl {
	if !containsLayer(c.baseLayers, l) {
		c.baseLayers = append(c.baseLayers, l)
	}
	return c
}

// AddOverlay offers l as an independently toggled overlay.
func (c *LayerControl) AddOverlay(l Layer) *LayerControl {
	if !containsLayer(c.overlays, l) {
		c.overlays = append(c.overlays, l)
	}
	return c
}

// BaseLayers returns the base layers in insertion order.
func (c *LayerControl) BaseLayers() []Layer {
	return append([]Layer(nil), c.baseLayers...)
}

// Overlays returns the overlays in insertion order.
func (c *LayerControl) Overlays() []Layer {
	return append([]Layer(nil), c.overlays...)
}

func (c *LayerControl) expression(w *jsWriter) string {
	return "L.control.layers(" + w.layerSet(c.baseLayers) + ", " + w.layerSet(c.overlays) + ", " +
		w.literal(map[string]any{"collapsed": c.collapsed}) + ")"
}

func (c *LayerControl) node() *Node {
	collapsed := c.collapsed
	n := &Node{Kind: KindLayerControl, ID: c.id, Collapsed: &collapsed}
	for _, l := range c.baseLayers {
		n.BaseLayers = append(n.BaseLayers, l.ID())
	}
	for _, l := range c.overlays {
		n.Overlays = append(n.Overlays, l.ID())
	}
	return n
}
