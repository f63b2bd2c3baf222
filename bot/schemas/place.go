package schemas

// PlaceSearch is a single place search result.
type PlaceSearch struct {
	Name    string `json:"name"`
	PlaceID string `json:"place_id"`
}

// PlaceDetails carries resolved place information.
type PlaceDetails struct {
	PlaceID   string  `json:"place_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
