package leaflet

// Tile sources.
const (
	GoogleMapsRoadmap = "roadmap"
	GoogleMapsHybrid  = "hybrid"

	WikimediaURL = "https://maps.wikimedia.org/osm-intl/{z}/{x}/{y}{r}.png"

	// WikimediaCredit is the attribution the Wikimedia tile usage policy requires.
	WikimediaCredit = `<a href="https://wikimediafoundation.org/wiki/Maps_Terms_of_Use" target="_blank">Wikimedia</a> | Map data &copy; <a href="https://openstreetmap.org/copyright" target="_blank">OpenStreetMap contributors</a>`
)

// Provider is a raster base layer served by a known tile provider.
type Provider struct {
	options
	source  string // "google-maps" or "wikimedia"
	mapType string // Google Maps map type
	url     string // tile URL template
}

// NewGoogleMaps creates a Google Maps layer of the given map type ("roadmap"
// or "hybrid"). It is rendered with the GoogleMutant plugin, which loads tiles
// using the site's browser API key.
func NewGoogleMaps(mapType string) *Provider {
	p := &Provider{
		options: newOptions("google_maps_" + mapType),
		source:  "google-maps",
		mapType: mapType,
	}
	p.set("type", mapType)
	return p
}

// NewWikimedia creates the Wikimedia OSM tile layer with its required credit
// as the attribution.
func NewWikimedia() *Provider {
	p := &Provider{
		options: newOptions("wikimedia"),
		source:  "wikimedia",
		url:     WikimediaURL,
	}
	p.set("attribution", WikimediaCredit)
	p.set("minZoom", 1)
	p.set("maxZoom", 19)
	return p
}

// Kind implements Layer.
func (p *Provider) Kind() Kind { return KindProvider }

// Source returns the tile provider identity.
func (p *Provider) Source() string { return p.source }

// MapType returns the Google Maps map type, or "" for other providers.
func (p *Provider) MapType() string { return p.mapType }

// SetOption sets a Leaflet option.
func (p *Provider) SetOption(key string, value any) *Provider {
	p.set(key, value)
	return p
}

// SetAttribution replaces the attribution text.
func (p *Provider) SetAttribution(attribution string) *Provider {
	p.set("attribution", attribution)
	return p
}

func (p *Provider) expression(w *jsWriter) string {
	if p.source == "google-maps" {
		return "L.gridLayer.googleMutant(" + w.literal(p.opts) + ")"
	}
	return "L.tileLayer(" + w.literal(p.url) + ", " + w.literal(p.opts) + ")"
}

func (p *Provider) node() *Node {
	source := p.source
	if p.mapType != "" {
		source += ":" + p.mapType
	}
	return &Node{
		Kind:        KindProvider,
		ID:          p.id,
		Name:        p.Name(),
		Attribution: p.Attribution(),
		Source:      source,
	}
}
