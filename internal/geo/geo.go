// Package geo resolves postcodes to coordinates through an external geocoding
// service and classifies locations relative to a fixed reference point.
package geo

import "github.com/mdouchement/pinpost/internal/model"

// A Point is a geographic coordinate.
type Point struct {
	Latitude  float64
	Longitude float64
}

// A Place is a location resolved from a postcode.
type Place struct {
	Latitude          float64
	Longitude         float64
	Name              string
	State             string
	StateAbbreviation string
}

// Quadrant returns the compass quadrant of p relative to ref.
// Exact equality on an axis resolves to N and E respectively.
func Quadrant(p Point, ref Point) string {
	if p.Latitude >= ref.Latitude {
		if p.Longitude >= ref.Longitude {
			return model.DirectionNE
		}
		return model.DirectionNW
	}
	if p.Longitude >= ref.Longitude {
		return model.DirectionSE
	}
	return model.DirectionSW
}
