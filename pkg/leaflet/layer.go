// Package leaflet builds Leaflet map scene graphs and serializes them to HTML.
package leaflet

import "maps"

// Kind identifies a layer or control variant.
type Kind string

const (
	KindMap          Kind = "map"
	KindProvider     Kind = "provider"
	KindLayerGroup   Kind = "layerGroup"
	KindMarker       Kind = "marker"
	KindPopup        Kind = "popup"
	KindLayerControl Kind = "layerControl"
)

// Layer is anything that can be added to a Map or LayerGroup.
type Layer interface {
	ID() string
	Kind() Kind
	Name() string
	Attribution() string
	Options() map[string]any

	expression(w *jsWriter) string
	node() *Node
}

// Container owns layers. A Marker belongs to at most one Container.
type Container interface {
	ID() string
	Layers() []Layer

	attach(l Layer)
	remove(l Layer)
}

// options holds the id and Leaflet options shared by every layer.
type options struct {
	id   string
	opts map[string]any
}

func newOptions(id string) options {
	return options{id: id, opts: make(map[string]any)}
}

// ID returns the layer id.
func (o *options) ID() string {
	return o.id
}

// Name returns the "name" option, used as the label in a layer control.
func (o *options) Name() string {
	name, _ := o.opts["name"].(string)
	return name
}

// Attribution returns the "attribution" option.
func (o *options) Attribution() string {
	attribution, _ := o.opts["attribution"].(string)
	return attribution
}

// Options returns a copy of the Leaflet options.
func (o *options) Options() map[string]any {
	return maps.Clone(o.opts)
}

func (o *options) set(key string, value any) {
	o.opts[key] = value
}

// label is the text a layer control shows for l.
func label(l Layer) string {
	if name := l.Name(); name != "" {
		return name
	}
	return l.ID()
}

// adopt records owner as the container of l, detaching a marker from the
// container it was in before.
func adopt(owner Container, l Layer) {
	m, ok := l.(*Marker)
	if !ok {
		return
	}
	if m.owner != nil && m.owner != owner {
		m.owner.remove(m)
	}
	m.owner = owner
}

func containsLayer(layers []Layer, l Layer) bool {
	for _, existing := range layers {
		if existing == l {
			return true
		}
	}
	return false
}

func removeLayer(layers []Layer, l Layer) []Layer {
	out := layers[:0]
	for _, existing := range layers {
		if existing != l {
			out = append(out, existing)
		}
	}
	return out
}
