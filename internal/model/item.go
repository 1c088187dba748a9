package model

import "time"

const (
	// DirectionNE means north-east of the reference point.
	DirectionNE = "NE"
	// DirectionNW means north-west of the reference point.
	DirectionNW = "NW"
	// DirectionSE means south-east of the reference point.
	DirectionSE = "SE"
	// DirectionSW means south-west of the reference point.
	DirectionSW = "SW"
)

// An Item represents a database record.
// Latitude, Longitude and Direction are derived from Postcode at creation time
// and are never client-settable.
type Item struct {
	Base `msgpack:",inline" storm:"inline"`

	Name      string    `json:"name"                     msgpack:"name"                     storm:"index"`
	Postcode  string    `json:"postcode"                 msgpack:"postcode"                 storm:"index"`
	Latitude  float64   `json:"latitude"                 msgpack:"latitude"`
	Longitude float64   `json:"longitude"                msgpack:"longitude"`
	Direction string    `json:"direction_from_reference" msgpack:"direction_from_reference"`
	Title     string    `json:"title"                    msgpack:"title"`
	Users     []string  `json:"users"                    msgpack:"users"`
	StartDate time.Time `json:"start_date"               msgpack:"start_date"`
}
