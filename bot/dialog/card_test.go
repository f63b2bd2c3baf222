package dialog

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/bot/session"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{"same point", 41.2995, 69.2401, 41.2995, 69.2401, 0},
		{"tashkent to samarkand", 41.2995, 69.2401, 39.6270, 66.9750, 264},
		{"across the equator", 1, 0, -1, 0, 222},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > 5 {
				t.Fatalf("Haversine = %.1f km, want about %.0f", got, tt.want)
			}
		})
	}
}

func cardConv(t *testing.T, backend Backend) *conv {
	t.Helper()
	e, _ := testEngine(t, backend)
	return &conv{
		e:      e,
		r:      &fakeResponder{},
		userID: testUserID,
		sess:   &session.Session{Data: session.Data{Locale: "en"}},
	}
}

func cardUser(age int) *schemas.User {
	return &schemas.User{
		ID:        uuid.New(),
		Name:      "Madina",
		BirthDate: time.Now().AddDate(-age, 0, -1),
	}
}

func TestProfileCardCaption(t *testing.T) {
	placeID := "tashkent"
	bio := "tea over coffee"
	user := cardUser(25)
	user.PlaceID = &placeID
	user.Bio = &bio

	c := cardConv(t, &fakeBackend{placeName: "Tashkent"})
	card := c.profileCard(context.Background(), user, nil, nil)

	want := "Madina, 25, 📍 Tashkent\n\ntea over coffee"
	if card.Caption != want {
		t.Fatalf("caption = %q, want %q", card.Caption, want)
	}
}

func TestProfileCardWithoutPlaceOrBio(t *testing.T) {
	user := cardUser(30)

	c := cardConv(t, &fakeBackend{})
	card := c.profileCard(context.Background(), user, nil, nil)

	if card.Caption != "Madina, 30" {
		t.Fatalf("caption = %q", card.Caption)
	}
}

func TestProfileCardNearbyShowsDistance(t *testing.T) {
	placeID := "tashkent"
	user := cardUser(25)
	user.PlaceID = &placeID
	user.LocationPrecise = true
	user.Latitude, user.Longitude = 41.30, 69.24

	viewer := cardUser(25)
	viewer.LocationPrecise = true
	viewer.Latitude, viewer.Longitude = 41.35, 69.24

	c := cardConv(t, &fakeBackend{placeName: "Tashkent"})
	card := c.profileCard(context.Background(), user, nil, viewer)

	if strings.Contains(card.Caption, "Tashkent") {
		t.Fatalf("caption kept the city over the distance: %q", card.Caption)
	}
	if !strings.Contains(card.Caption, "km") {
		t.Fatalf("caption = %q, want a distance", card.Caption)
	}
}

func TestProfileCardFarAwayKeepsCity(t *testing.T) {
	placeID := "samarkand"
	user := cardUser(25)
	user.PlaceID = &placeID
	user.LocationPrecise = true
	user.Latitude, user.Longitude = 39.62, 66.97

	viewer := cardUser(25)
	viewer.LocationPrecise = true
	viewer.Latitude, viewer.Longitude = 41.30, 69.24

	c := cardConv(t, &fakeBackend{placeName: "Samarkand"})
	card := c.profileCard(context.Background(), user, nil, viewer)

	if !strings.Contains(card.Caption, "Samarkand") {
		t.Fatalf("caption = %q, want the city name", card.Caption)
	}
}

func TestProfileCardImpreciseViewerKeepsCity(t *testing.T) {
	placeID := "tashkent"
	user := cardUser(25)
	user.PlaceID = &placeID
	user.LocationPrecise = true
	user.Latitude, user.Longitude = 41.30, 69.24

	viewer := cardUser(25)
	viewer.Latitude, viewer.Longitude = 41.31, 69.24

	c := cardConv(t, &fakeBackend{placeName: "Tashkent"})
	card := c.profileCard(context.Background(), user, nil, viewer)

	if !strings.Contains(card.Caption, "Tashkent") {
		t.Fatalf("caption = %q, want the city name", card.Caption)
	}
}

func TestProfileCardKeepsOnlyVisualMedia(t *testing.T) {
	media := []schemas.File{
		{ID: 1, FileType: enums.FileTypeImage},
		{ID: 2, FileType: enums.FileTypeAudio},
		{ID: 3, FileType: enums.FileTypeVideo},
		{ID: 4, FileType: enums.FileTypeDocument},
	}

	c := cardConv(t, &fakeBackend{})
	card := c.profileCard(context.Background(), cardUser(25), media, nil)

	if len(card.Media) != 2 {
		t.Fatalf("media = %d items, want 2", len(card.Media))
	}
	if card.Media[0].ID != 1 || card.Media[1].ID != 3 {
		t.Fatalf("media ids = %d, %d", card.Media[0].ID, card.Media[1].ID)
	}
}
