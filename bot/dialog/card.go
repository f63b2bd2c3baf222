package dialog

import (
	"context"
	"fmt"
	"math"

	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/schemas"
)

const (
	earthRadiusKM = 6371
	// Distances beyond this are shown as the city name instead.
	nearbyDistanceKM = 20
)

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	lat1, lon1, lat2, lon2 = rad(lat1), rad(lon1), rad(lat2), rad(lon2)
	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// profileCard renders a user's media album with a localized caption. viewer
// is the user looking at the card; when both locations are precise and close,
// the city name is replaced by the distance.
func (c *conv) profileCard(ctx context.Context, user *schemas.User, media []schemas.File, viewer *schemas.User) ProfileCard {
	caption := fmt.Sprintf("%s, %d", user.Name, user.Age())

	location := ""
	if user.PlaceID != nil {
		// The card still renders without a city when the place lookup fails.
		if city, err := c.e.api.PlaceName(ctx, *user.PlaceID, c.locale()); err == nil && city != "" {
			location = "📍 " + city
		}
	}
	if viewer != nil && viewer.LocationPrecise && user.LocationPrecise {
		dist := Haversine(user.Latitude, user.Longitude, viewer.Latitude, viewer.Longitude)
		if dist > 0 && dist <= nearbyDistanceKM {
			location = c.t(i18n.MsgDistanceKM, int(math.Ceil(dist)))
		}
	}
	if location != "" {
		caption += ", " + location
	}
	if user.Bio != nil && *user.Bio != "" {
		caption += "\n\n" + *user.Bio
	}

	files := make([]schemas.File, 0, len(media))
	for _, file := range media {
		if file.FileType != enums.FileTypeImage && file.FileType != enums.FileTypeVideo {
			continue
		}
		files = append(files, file)
	}
	return ProfileCard{Caption: caption, Media: files}
}

// sendCard fetches a user's media and sends their card.
func (c *conv) sendCard(ctx context.Context, user *schemas.User, viewer *schemas.User) error {
	media, err := c.e.api.Media(ctx, user.ID)
	if err != nil {
		return err
	}
	return c.r.SendAlbum(ctx, c.profileCard(ctx, user, media, viewer))
}
