package leaflet

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidCoordinates is returned when a latitude/longitude pair is missing,
// not numeric, or out of range.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude float64 `json:"lng" validate:"min=-180,max=180"`
}

// NewCoordinates validates and returns a coordinate pair.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if !isFinite(latitude) || !isFinite(longitude) {
		return Coordinates{}, fmt.Errorf("%w: %v, %v", ErrInvalidCoordinates, latitude, longitude)
	}

	c := Coordinates{Latitude: latitude, Longitude: longitude}
	if err := validate.Struct(c); err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v, %v", ErrInvalidCoordinates, latitude, longitude)
	}
	return c, nil
}

// ParseCoordinates parses decimal degree strings as written in shortcode
// attributes. Empty values are invalid.
func ParseCoordinates(latitude, longitude string) (Coordinates, error) {
	lat, err := parseDegrees(latitude)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinates, latitude)
	}
	lng, err := parseDegrees(longitude)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinates, longitude)
	}
	return NewCoordinates(lat, lng)
}

// String formats the pair as "lat,lng".
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func parseDegrees(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}
	return strconv.ParseFloat(s, 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
