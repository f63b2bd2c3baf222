package api

import (
	"context"
	"net/url"

	"github.com/m3rciful/anorbot/bot/schemas"
)

func langQuery(language string) url.Values {
	q := url.Values{}
	q.Set("language", language)
	return q
}

// SearchPlaces looks up cities by free-form name.
func (c *Client) SearchPlaces(ctx context.Context, query, language string) ([]schemas.PlaceSearch, error) {
	q := langQuery(language)
	q.Set("query", query)
	var places []schemas.PlaceSearch
	if err := c.get(ctx, 0, "/v1/places/search", q, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// PlaceDetails resolves a place id to coordinates and a localized name.
func (c *Client) PlaceDetails(ctx context.Context, placeID, language string) (*schemas.PlaceDetails, error) {
	var details schemas.PlaceDetails
	if err := c.get(ctx, 0, "/v1/places/"+placeID, langQuery(language), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// PlaceByCoordinates reverse-geocodes a location shared by the user.
func (c *Client) PlaceByCoordinates(ctx context.Context, lat, lon float64, language string) (*schemas.PlaceDetails, error) {
	var details schemas.PlaceDetails
	err := c.post(ctx, 0, "/v1/places/coordinates", langQuery(language), schemas.Coordinates{
		Latitude:  lat,
		Longitude: lon,
	}, &details)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// PlaceName returns the localized display name for a place id, or an empty
// string when the place is unknown.
func (c *Client) PlaceName(ctx context.Context, placeID, language string) (string, error) {
	var result struct {
		Name string `json:"name"`
	}
	err := c.get(ctx, 0, "/v1/places/"+placeID+"/name", langQuery(language), &result)
	if err != nil {
		if IsStatus(err, 404) {
			return "", nil
		}
		return "", err
	}
	return result.Name, nil
}
