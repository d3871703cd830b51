package leaflet

// Map is the root of a scene graph. It owns its layers and controls.
type Map struct {
	id       string
	center   Coordinates
	zoom     int
	height   string
	width    string
	layers   []Layer
	controls []Control
}

// Default map dimensions.
const (
	DefaultHeight = "400px"
	DefaultWidth  = "100%"
)

// NewMap creates a map centered on center. A negative zoom is clamped to 0.
func NewMap(id string, center Coordinates, zoom int) *Map {
	return &Map{
		id:     id,
		center: center,
		zoom:   max(zoom, 0),
		height: DefaultHeight,
		width:  DefaultWidth,
	}
}

// ID returns the map id, used as the HTML element id.
func (m *Map) ID() string { return m.id }

// Center returns the initial view center.
func (m *Map) Center() Coordinates { return m.center }

// Zoom returns the initial zoom level.
func (m *Map) Zoom() int { return m.zoom }

// Height returns the CSS height.
func (m *Map) Height() string { return m.height }

// Width returns the CSS width.
func (m *Map) Width() string { return m.width }

// SetCenter sets the initial view center.
func (m *Map) SetCenter(c Coordinates) *Map {
	m.center = c
	return m
}

// SetZoom sets the initial zoom level. A negative zoom is clamped to 0.
func (m *Map) SetZoom(zoom int) *Map {
	m.zoom = max(zoom, 0)
	return m
}

// SetHeight sets the CSS height of the map element.
func (m *Map) SetHeight(height string) *Map {
	m.height = height
	return m
}

// SetWidth sets the CSS width of the map element.
func (m *Map) SetWidth(width string) *Map {
	m.width = width
	return m
}

// AddLayer adds l to the map. Adding a layer already on the map is a no-op.
func (m *Map) AddLayer(l Layer) *Map {
	m.attach(l)
	return m
}

// AddLayers adds each layer in order.
func (m *Map) AddLayers(layers []Layer) *Map {
	for _, l := range layers {
		m.attach(l)
	}
	return m
}

// AddControl adds a control to the map.
func (m *Map) AddControl(c Control) *Map {
	for _, existing := range m.controls {
		if existing == c {
			return m
		}
	}
	m.controls = append(m.controls, c)
	return m
}

// Layers returns the map's layers in insertion order.
func (m *Map) Layers() []Layer {
	return append([]Layer(nil), m.layers...)
}

// Controls returns the map's controls in insertion order.
func (m *Map) Controls() []Control {
	return append([]Control(nil), m.controls...)
}

func (m *Map) attach(l Layer) {
	if containsLayer(m.layers, l) {
		return
	}
	adopt(m, l)
	m.layers = append(m.layers, l)
}

func (m *Map) remove(l Layer) {
	m.layers = removeLayer(m.layers, l)
}
