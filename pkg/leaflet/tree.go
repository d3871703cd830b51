package leaflet

// Node is a serializable snapshot of one element of a map graph.
type Node struct {
	Kind        Kind         `json:"kind"`
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	Attribution string       `json:"attribution,omitempty"`
	Source      string       `json:"source,omitempty"`
	Center      *Coordinates `json:"center,omitempty"`
	Zoom        *int         `json:"zoom,omitempty"`
	Height      string       `json:"height,omitempty"`
	Width       string       `json:"width,omitempty"`
	Content     string       `json:"content,omitempty"`
	Collapsed   *bool        `json:"collapsed,omitempty"`
	BaseLayers  []string     `json:"baseLayers,omitempty"`
	Overlays    []string     `json:"overlays,omitempty"`
	Children    []*Node      `json:"children,omitempty"`
}

// Tree returns a snapshot of the map: its layers in order, then its controls.
func (m *Map) Tree() *Node {
	center := m.center
	zoom := m.zoom
	n := &Node{
		Kind:   KindMap,
		ID:     m.id,
		Center: &center,
		Zoom:   &zoom,
		Height: m.height,
		Width:  m.width,
	}
	for _, l := range m.layers {
		n.Children = append(n.Children, l.node())
	}
	for _, c := range m.controls {
		n.Children = append(n.Children, c.node())
	}
	return n
}

// Walk calls fn for n and every descendant, depth first.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}
