package mapblock

type fakeSettings map[string]string

func (f fakeSettings) BrowserKey(provider string) string {
	return f[provider]
}

type fakeGeo struct {
	latitude, longitude string
}

func (g fakeGeo) BaseCoordinates() (string, string) {
	return g.latitude, g.longitude
}

func fixedID() string {
	return "cn-map-test"
}

func newTestBuilder(key string, geo GeoSource, opts ...Option) *Builder {
	opts = append([]Option{WithIDGenerator(fixedID)}, opts...)
	return NewBuilder(fakeSettings{GoogleMapsProvider: key}, geo, opts...)
}
