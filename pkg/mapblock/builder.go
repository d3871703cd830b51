// Package mapblock turns [cn-mapblock] shortcodes, with their nested
// [maplayer] and [mapmarker] shortcodes, into Leaflet map graphs.
package mapblock

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/open-cli-collective/cn-mapblock/pkg/content"
	"github.com/open-cli-collective/cn-mapblock/pkg/leaflet"
	"github.com/open-cli-collective/cn-mapblock/pkg/shortcode"
)

// GoogleMapsProvider is the settings section holding the Google Maps browser key.
const GoogleMapsProvider = "google_maps_geocoding_api"

// Fixed ids.
const (
	LayerControlID  = "layerControl"
	DefaultMarkerID = "default"
	PopupID         = "default"
)

// Settings looks up API keys for a named provider. An empty key means none
// is configured.
type Settings interface {
	BrowserKey(provider string) string
}

// GeoSource supplies the directory's base coordinates, used when a block
// gives none. Either value may be empty.
type GeoSource interface {
	BaseCoordinates() (latitude, longitude string)
}

// Result is one built map.
type Result struct {
	Map      *leaflet.Map
	Control  *leaflet.LayerControl
	Atts     BlockAtts
	Warnings []string // elements dropped or defaulted while building
}

// addWarning logs a warning and stores it in the result.
func (r *Result) addWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	log.Printf("WARN: "+format, args...)
}

// Option configures a Builder.
type Option func(*Builder)

// WithPopupRenderer sets how popup content is converted and sanitized.
func WithPopupRenderer(r *content.Renderer) Option {
	return func(b *Builder) {
		b.popups = r
	}
}

// WithIDGenerator sets the function producing map ids for blocks without one.
func WithIDGenerator(fn func() string) Option {
	return func(b *Builder) {
		b.newID = fn
	}
}

// Builder builds map graphs. It holds only read-only configuration and
// may be reused across builds.
type Builder struct {
	settings Settings
	geo      GeoSource
	popups   *content.Renderer
	newID    func() string
}

// NewBuilder creates a builder. Nil settings or geo behave as if nothing is
// configured.
func NewBuilder(settings Settings, geo GeoSource, opts ...Option) *Builder {
	b := &Builder{
		settings: settings,
		geo:      geo,
		popups:   content.NewRenderer(content.FormatHTML),
		newID:    newMapID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// newMapID returns a page-unique map element id.
func newMapID() string {
	return "cn-map-" + uuid.NewString()
}

// BuildText parses raw attribute text and builds a map.
func (b *Builder) BuildText(rawAtts, body string) *Result {
	return b.Build(shortcode.ParseAtts(rawAtts), body)
}

// Build builds the map for one [cn-mapblock] with attributes atts and inner
// content body. It never fails: invalid coordinates drop the affected marker
// and are reported in Result.Warnings.
func (b *Builder) Build(atts shortcode.Atts, body string) *Result {
	res := &Result{}

	latitude, longitude := b.baseCoordinates()
	blockAtts, zoomOK := ParseBlockAtts(atts, blockDefaults(b.newID(), latitude, longitude))
	res.Atts = blockAtts
	if !zoomOK {
		res.addWarning("map %s: invalid zoom, using %d", blockAtts.ID, DefaultZoom)
	}

	center, err := leaflet.ParseCoordinates(blockAtts.Latitude, blockAtts.Longitude)
	if err != nil {
		res.addWarning("map %s: no center: %v", blockAtts.ID, err)
	}

	res.Map = leaflet.NewMap(blockAtts.ID, center, blockAtts.Zoom).
		SetHeight(blockAtts.Height).
		SetWidth(blockAtts.Width)
	res.Control = leaflet.NewLayerControl(LayerControlID).SetCollapsed(false)

	Compose(b.browserKey(), res.Map, res.Control)

	res.Map.AddLayers(res.Control.BaseLayers()).AddControl(res.Control)

	body = b.parseLayers(res, body)
	body = b.parseMarkers(res, body, nil)

	res.Map.AddLayers(res.Control.Overlays())

	if blockAtts.Marker {
		if err != nil {
			res.addWarning("map %s: default marker dropped", blockAtts.ID)
			return res
		}

		marker := leaflet.NewMarker(DefaultMarkerID, center)
		if body != "" {
			b.bindPopup(res, marker, body)
		}
		marker.AddTo(res.Map)
	}

	return res
}

// parseLayers builds a layer group for every [maplayer] in body and returns
// body with them removed.
func (b *Builder) parseLayers(res *Result, body string) string {
	body = shortcode.Replace(body, TagLayer, func(m shortcode.Match) string {
		// No content means no markers; the layer is dropped.
		if m.Inner == "" {
			return ""
		}

		atts := ParseLayerAtts(shortcode.ParseAtts(shortcode.NormalizeQuotes(m.RawAtts)))

		group := leaflet.NewLayerGroup(atts.ID)
		if atts.Name != "" {
			group.SetOption("name", atts.Name)
		}

		b.parseMarkers(res, m.Inner, group)

		if atts.Control {
			res.Control.AddOverlay(group)
		} else {
			group.AddTo(res.Map)
		}

		return ""
	})

	return strings.TrimSpace(body)
}

// parseMarkers builds a marker for every [mapmarker] in body, adding it to
// group or, when group is nil, to the map. It returns body with the markers
// removed.
func (b *Builder) parseMarkers(res *Result, body string, group *leaflet.LayerGroup) string {
	body = shortcode.Replace(body, TagMarker, func(m shortcode.Match) string {
		atts := ParseMarkerAtts(m.Atts())

		c, err := leaflet.ParseCoordinates(atts.Latitude, atts.Longitude)
		if err != nil {
			res.addWarning("marker %s dropped: %v", atts.ID, err)
			return ""
		}

		marker := leaflet.NewMarker(atts.ID, c)
		if m.Inner != "" {
			b.bindPopup(res, marker, m.Inner)
		}

		if group != nil {
			group.AddLayer(marker)
		} else {
			marker.AddTo(res.Map)
		}

		return ""
	})

	return strings.TrimSpace(body)
}

func (b *Builder) bindPopup(res *Result, marker *leaflet.Marker, raw string) {
	html, err := b.popups.Render(raw)
	if err != nil {
		res.addWarning("marker %s: popup dropped: %v", marker.ID(), err)
		return
	}
	if html == "" {
		return
	}
	marker.BindPopup(leaflet.NewPopup(PopupID, html))
}

func (b *Builder) browserKey() string {
	if b.settings == nil {
		return ""
	}
	return b.settings.BrowserKey(GoogleMapsProvider)
}

func (b *Builder) baseCoordinates() (string, string) {
	if b.geo == nil {
		return "", ""
	}
	return b.geo.BaseCoordinates()
}
