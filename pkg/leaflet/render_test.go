package leaflet

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMap(t *testing.T) *Map {
	t.Helper()

	m := NewMap("cn-map-test", mustCoordinates(t, 40, -75), 10)
	control := NewLayerControl("layerControl").SetCollapsed(false)

	road := NewGoogleMaps(GoogleMapsRoadmap).SetOption("name", "Roadmap")
	control.AddBaseLayer(road)

	group := NewLayerGroup("l1").SetOption("name", "Shops")
	NewMarker("m1", mustCoordinates(t, 40.1, -75.1)).
		BindPopup(NewPopup("default", "Hello")).
		AddTo(group)
	control.AddOverlay(group)

	m.AddLayers(control.BaseLayers()).AddControl(control).AddLayers(control.Overlays())
	return m
}

func TestMap_HTML(t *testing.T) {
	out := sampleMap(t).HTML()

	assert.True(t, strings.HasPrefix(out, `<div id="cn-map-test" class="cn-map" style="height: 400px; width: 100%;"></div>`))
	assert.Contains(t, out, `var map = L.map("cn-map-test", {"center":[40,-75],"zoom":10});`)
	assert.Contains(t, out, `var layer0 = L.gridLayer.googleMutant({"name":"Roadmap","type":"roadmap"});`)
	assert.Contains(t, out, `var layer1 = L.layerGroup([], {"name":"Shops"});`)
	assert.Contains(t, out, `var layer2 = L.marker([40.1,-75.1], {}).bindPopup(L.popup({}).setContent("Hello"));`)
	assert.Contains(t, out, "layer2.addTo(layer1);")
	assert.Contains(t, out, `L.control.layers({"Roadmap": layer0}, {"Shops": layer1}, {"collapsed":false}).addTo(map);`)
	assert.True(t, strings.HasSuffix(out, "})();\n</script>\n"))
}

func TestMap_HTMLIsDeterministic(t *testing.T) {
	assert.Equal(t, sampleMap(t).HTML(), sampleMap(t).HTML())
}

func TestMap_HTMLEscapesContent(t *testing.T) {
	m := NewMap(`x"><script>`, Coordinates{}, 1)
	NewMarker("m", Coordinates{}).BindPopup(NewPopup("p", "</script><b>x</b>")).AddTo(m)

	out := m.HTML()
	assert.Contains(t, out, `id="x&#34;&gt;&lt;script&gt;"`)
	assert.NotContains(t, out, "</script><b>")
	assert.Contains(t, out, `</script>`)
}

func TestMap_HTMLWikimedia(t *testing.T) {
	m := NewMap("m", Coordinates{}, 3)
	m.AddLayer(NewWikimedia().SetAttribution("credit"))

	out := m.HTML()
	assert.Contains(t, out, `L.tileLayer("https://maps.wikimedia.org/osm-intl/{z}/{x}/{y}{r}.png", {"attribution":"credit","maxZoom":19,"minZoom":1})`)
	assert.Contains(t, out, "layer0.addTo(map);")
}

func TestMap_String(t *testing.T) {
	m := sampleMap(t)
	assert.Equal(t, m.HTML(), m.String())
}

func TestAssets(t *testing.T) {
	plain := Assets("")
	assert.Contains(t, plain, LeafletCSS)
	assert.Contains(t, plain, LeafletJS)
	assert.NotContains(t, plain, GoogleMapsJS)

	google := Assets("AB C")
	assert.Contains(t, google, GoogleMapsJS+"?key=AB+C")
	assert.Contains(t, google, GoogleMutantJS)
}

func TestMap_Tree(t *testing.T) {
	tree := sampleMap(t).Tree()

	assert.Equal(t, KindMap, tree.Kind)
	assert.Equal(t, "cn-map-test", tree.ID)
	require.NotNil(t, tree.Zoom)
	assert.Equal(t, 10, *tree.Zoom)
	require.Len(t, tree.Children, 3)

	assert.Equal(t, KindProvider, tree.Children[0].Kind)
	assert.Equal(t, "google-maps:roadmap", tree.Children[0].Source)

	group := tree.Children[1]
	assert.Equal(t, KindLayerGroup, group.Kind)
	require.Len(t, group.Children, 1)
	marker := group.Children[0]
	assert.Equal(t, "m1", marker.ID)
	require.Len(t, marker.Children, 1)
	assert.Equal(t, "Hello", marker.Children[0].Content)

	control := tree.Children[2]
	assert.Equal(t, KindLayerControl, control.Kind)
	assert.Equal(t, []string{"google_maps_roadmap"}, control.BaseLayers)
	assert.Equal(t, []string{"l1"}, control.Overlays)
	require.NotNil(t, control.Collapsed)
	assert.False(t, *control.Collapsed)

	_, err := json.Marshal(tree)
	assert.NoError(t, err)
}

func TestNode_Walk(t *testing.T) {
	var kinds []Kind
	var depths []int
	sampleMap(t).Tree().Walk(func(n *Node, depth int) {
		kinds = append(kinds, n.Kind)
		depths = append(depths, depth)
	})

	assert.Equal(t, []Kind{KindMap, KindProvider, KindLayerGroup, KindMarker, KindPopup, KindLayerControl}, kinds)
	assert.Equal(t, []int{0, 1, 1, 2, 3, 1}, depths)
}
