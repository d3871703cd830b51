package leaflet

// Marker is a point on the map with an optional popup.
type Marker struct {
	options
	coordinates Coordinates
	popup       *Popup
	owner       Container
}

// NewMarker creates a marker at c.
func NewMarker(id string, c Coordinates) *Marker {
	return &Marker{
		options:     newOptions(id),
		coordinates: c,
	}
}

// Kind implements Layer.
func (m *Marker) Kind() Kind { return KindMarker }

// Coordinates returns the marker position.
func (m *Marker) Coordinates() Coordinates { return m.coordinates }

// Popup returns the bound popup, or nil.
func (m *Marker) Popup() *Popup { return m.popup }

// Owner returns the map or layer group the marker was added to, or nil.
func (m *Marker) Owner() Container { return m.owner }

// SetOption sets a Leaflet option.
func (m *Marker) SetOption(key string, value any) *Marker {
	m.set(key, value)
	return m
}

// SetAttribution replaces the attribution text.
func (m *Marker) SetAttribution(attribution string) *Marker {
	m.set("attribution", attribution)
	return m
}

// BindPopup binds p to the marker, replacing any previous popup.
func (m *Marker) BindPopup(p *Popup) *Marker {
	m.popup = p
	return m
}

// AddTo adds the marker to c, removing it from any container it was
// previously added to.
func (m *Marker) AddTo(c Container) *Marker {
	c.attach(m)
	return m
}

func (m *Marker) expression(w *jsWriter) string {
	// Leaflet takes [lat, lng]
	expr := "L.marker(" + w.literal([]float64{m.coordinates.Latitude, m.coordinates.Longitude}) + ", " + w.literal(m.opts) + ")"
	if m.popup != nil {
		expr += ".bindPopup(" + m.popup.expression(w) + ")"
	}
	return expr
}

func (m *Marker) node() *Node {
	c := m.coordinates
	n := &Node{
		Kind:        KindMarker,
		ID:          m.id,
		Name:        m.Name(),
		Attribution: m.Attribution(),
		Center:      &c,
	}
	if m.popup != nil {
		n.Children = []*Node{m.popup.node()}
	}
	return n
}

// Popup is a content bubble bound to a marker.
type Popup struct {
	id      string
	content string
	opts    map[string]any
}

// NewPopup creates a popup holding HTML content.
func NewPopup(id, content string) *Popup {
	return &Popup{id: id, content: content, opts: make(map[string]any)}
}

// ID returns the popup id.
func (p *Popup) ID() string { return p.id }

// Content returns the popup HTML.
func (p *Popup) Content() string { return p.content }

// SetOption sets a Leaflet popup option.
func (p *Popup) SetOption(key string, value any) *Popup {
	p.opts[key] = value
	return p
}

func (p *Popup) expression(w *jsWriter) string {
	return "L.popup(" + w.literal(p.opts) + ").setContent(" + w.literal(p.content) + ")"
}

func (p *Popup) node() *Node {
	return &Node{Kind: KindPopup, ID: p.id, Content: p.content}
}
