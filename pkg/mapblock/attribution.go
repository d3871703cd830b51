package mapblock

import (
	"strings"

	"github.com/open-cli-collective/cn-mapblock/pkg/leaflet"
)

// Attribution credits.
const (
	AttributionSeparator = " | "

	LeafletCredit = `<a href="https://leafletjs.com/" target="_blank" title="Leaflet">Leaflet</a>`

	// Backlink is the plugin credit followed by the Leaflet credit.
	Backlink = `<a href="https://connections-pro.com/" target="_blank" title="Connections Business Directory plugin for WordPress">Connections Business Directory</a>` +
		AttributionSeparator + LeafletCredit
)

// Base layer labels in the layer control.
const (
	RoadmapName   = "Roadmap"
	SatelliteName = "Satellite"
)

// Attribution joins the backlink with any provider credits.
func Attribution(credits ...string) string {
	return strings.Join(append([]string{Backlink}, credits...), AttributionSeparator)
}

// Compose selects the base layers. With a browser key, the Google Maps
// roadmap and hybrid layers are offered as selectable base layers on lc.
// Without one, the Wikimedia layer is added directly to m and is not
// selectable.
func Compose(browserKey string, m *leaflet.Map, lc *leaflet.LayerControl) {
	if browserKey != "" {
		roadmap := leaflet.NewGoogleMaps(leaflet.GoogleMapsRoadmap).
			SetAttribution(Attribution()).
			SetOption("name", RoadmapName)
		lc.AddBaseLayer(roadmap)

		hybrid := leaflet.NewGoogleMaps(leaflet.GoogleMapsHybrid).
			SetAttribution(Attribution()).
			SetOption("name", SatelliteName)
		lc.AddBaseLayer(hybrid)
		return
	}

	base := leaflet.NewWikimedia()
	base.SetAttribution(Attribution(base.Attribution()))
	m.AddLayer(base)
}
