package types

type Station struct {
	ID        string  `json:"station_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type StationStatus struct {
	ID             string `json:"station_id"`
	BikesAvailable int    `json:"num_bikes_available"`
	DocksAvailable int    `json:"num_docks_available"`
}

// StationSnapshot is one consistent fetch of every station in the serving
// area. PipedCoordinates encodes the station coordinates as
// "lat,lng|lat,lng|..." in the exact order of Stations; the distance matrix
// response is mapped back to stations by that order.
type StationSnapshot struct {
	Stations         []Station
	PipedCoordinates string
	statuses         map[string]StationStatus
}

func NewStationSnapshot(stations []Station, pipedCoordinates string, statuses []StationStatus) StationSnapshot {
	byID := make(map[string]StationStatus, len(statuses))
	for _, status := range statuses {
		byID[status.ID] = status
	}
	return StationSnapshot{
		Stations:         stations,
		PipedCoordinates: pipedCoordinates,
		statuses:         byID,
	}
}

// StatusFor looks up live availability by station id, never by position.
func (s StationSnapshot) StatusFor(stationID string) (StationStatus, bool) {
	status, ok := s.statuses[stationID]
	return status, ok
}

type StationInformationResponse struct {
	Data struct {
		Stations []Station `json:"stations"`
	} `json:"data"`
}

type StationStatusResponse struct {
	Data struct {
		Stations []StationStatus `json:"stations"`
	} `json:"data"`
}
