package types

type DistanceMatrixResponse struct {
	Status string              `json:"status"`
	Rows   []DistanceMatrixRow `json:"rows"`
}

type DistanceMatrixRow struct {
	Elements []DistanceElement `json:"elements"`
}

// DistanceElement is the per-destination result of a distance matrix query,
// in the same order as the destinations were sent.
type DistanceElement struct {
	Status   string        `json:"status"`
	Duration DurationValue `json:"duration"`
}

type DurationValue struct {
	Value int64 `json:"value"`
}

type DirectionsResponse struct {
	Status string           `json:"status"`
	Routes []DirectionsRoute `json:"routes"`
}

type DirectionsRoute struct {
	OverviewPolyline Polyline `json:"overview_polyline"`
}

type Polyline struct {
	Points string `json:"points"`
}

// RankedStation pairs a station with the walking duration from the
// requested address, in seconds.
type RankedStation struct {
	Station         Station
	WalkingDuration int64
}

// LabelledStation is a ranked station with its single-letter rank label,
// shared between the text summary and the map image markers.
type LabelledStation struct {
	Label rune
	RankedStation
}
