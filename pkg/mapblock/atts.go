package mapblock

import (
	"strconv"
	"strings"

	"github.com/open-cli-collective/cn-mapblock/pkg/leaflet"
	"github.com/open-cli-collective/cn-mapblock/pkg/shortcode"
)

// Shortcode tags.
const (
	TagBlock  = "cn-mapblock"
	TagLayer  = "maplayer"
	TagMarker = "mapmarker"
)

// DefaultZoom is the zoom used when a block gives none or an invalid one.
const DefaultZoom = 16

// BlockAtts are the resolved attributes of a [cn-mapblock] shortcode.
type BlockAtts struct {
	ID        string
	Latitude  string
	Longitude string
	Zoom      int
	Height    string
	Width     string
	Marker    bool
	Extra     map[string]string // attributes with no meaning to the block
}

// LayerAtts are the resolved attributes of a [maplayer] shortcode.
type LayerAtts struct {
	ID      string
	Name    string
	Control bool
	Extra   map[string]string
}

// MarkerAtts are the resolved attributes of a [mapmarker] shortcode.
type MarkerAtts struct {
	ID        string
	Latitude  string
	Longitude string
	Extra     map[string]string
}

var layerDefaults = map[string]string{
	"id":      "layer",
	"name":    "",
	"control": "false",
}

var markerDefaults = map[string]string{
	"id":        "marker",
	"latitude":  "",
	"longitude": "",
}

// blockDefaults returns the [cn-mapblock] defaults for one build.
func blockDefaults(id, latitude, longitude string) map[string]string {
	return map[string]string{
		"id":        id,
		"latitude":  latitude,
		"longitude": longitude,
		"zoom":      strconv.Itoa(DefaultZoom),
		"height":    leaflet.DefaultHeight,
		"width":     leaflet.DefaultWidth,
		"marker":    "true",
	}
}

// ParseBlockAtts resolves block attributes against defaults. The returned
// bool is false when the zoom attribute was not a non-negative integer and
// DefaultZoom was used instead.
func ParseBlockAtts(atts shortcode.Atts, defaults map[string]string) (BlockAtts, bool) {
	merged := atts.Merge(defaults).Named

	zoomOK := true
	zoom, err := strconv.Atoi(strings.TrimSpace(merged["zoom"]))
	if err != nil || zoom < 0 {
		zoom = DefaultZoom
		zoomOK = false
	}

	return BlockAtts{
		ID:        merged["id"],
		Latitude:  merged["latitude"],
		Longitude: merged["longitude"],
		Zoom:      zoom,
		Height:    merged["height"],
		Width:     merged["width"],
		Marker:    shortcode.ToBoolean(merged["marker"]),
		Extra:     extra(merged, defaults),
	}, zoomOK
}

// ParseLayerAtts resolves [maplayer] attributes. A bare control flag, as in
// [maplayer control], turns the control on.
func ParseLayerAtts(atts shortcode.Atts) LayerAtts {
	merged := atts.Merge(layerDefaults).Named
	return LayerAtts{
		ID:      merged["id"],
		Name:    merged["name"],
		Control: shortcode.ToBoolean(merged["control"]) || atts.Flag("control"),
		Extra:   extra(merged, layerDefaults),
	}
}

// ParseMarkerAtts resolves [mapmarker] attributes.
func ParseMarkerAtts(atts shortcode.Atts) MarkerAtts {
	merged := atts.Merge(markerDefaults).Named
	return MarkerAtts{
		ID:        merged["id"],
		Latitude:  merged["latitude"],
		Longitude: merged["longitude"],
		Extra:     extra(merged, markerDefaults),
	}
}

// extra returns the keys of merged that have no default.
func extra(merged, defaults map[string]string) map[string]string {
	var out map[string]string
	for k, v := range merged {
		if _, known := defaults[k]; known {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[k] = v
	}
	return out
}
