package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/schemas"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, InternalToken: "secret"})
}

func TestRequestHeaders(t *testing.T) {
	var gotToken, gotUserID, gotContentType string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Internal-Token")
		gotUserID = r.Header.Get("X-Telegram-User-Id")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(schemas.Reaction{})
	})

	_, err := client.React(context.Background(), 42, schemas.ReactionIn{
		ToUserID:     uuid.New(),
		ReactionType: enums.ReactionLike,
	})
	if err != nil {
		t.Fatalf("React: %v", err)
	}
	if gotToken != "secret" {
		t.Errorf("internal token = %q", gotToken)
	}
	if gotUserID != "42" {
		t.Errorf("telegram user id = %q", gotUserID)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
}

func TestCurrentUser(t *testing.T) {
	id := uuid.New()
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users/me" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          id.String(),
			"telegram_id": 42,
			"name":        "Alice",
			"birth_date":  "2000-12-31T00:00:00Z",
			"gender":      "female",
			"ui_language": "en",
			"is_active":   true,
		})
	})

	user, err := client.CurrentUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user.ID != id {
		t.Errorf("id = %s, want %s", user.ID, id)
	}
	if user.Name != "Alice" || !user.Active {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestCurrentUserNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
	})

	_, err := client.CurrentUser(context.Background(), 42)
	if !IsStatus(err, 404) {
		t.Fatalf("want 404 error, got %v", err)
	}
	if StatusOf(err) != 404 {
		t.Errorf("StatusOf = %d", StatusOf(err))
	}
}

func TestListEndpointsTreat404AsEmpty(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	ctx := context.Background()

	if users, err := client.Matches(ctx, 42, 2, 0); err != nil || users != nil {
		t.Errorf("Matches = %v, %v; want nil, nil", users, err)
	}
	if users, err := client.Likes(ctx, 42, 1); err != nil || users != nil {
		t.Errorf("Likes = %v, %v; want nil, nil", users, err)
	}
	if user, err := client.BestMatch(ctx, 42); err != nil || user != nil {
		t.Errorf("BestMatch = %v, %v; want nil, nil", user, err)
	}
	if users, err := client.Rewinds(ctx, 42, 1, 0); err != nil || users != nil {
		t.Errorf("Rewinds = %v, %v; want nil, nil", users, err)
	}
}

func TestRewindLimitPropagates(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"rewind limit exceeded"}`, http.StatusBadRequest)
	})

	_, err := client.Rewinds(context.Background(), 42, 1, 3)
	if !IsStatus(err, 400) {
		t.Fatalf("want 400 error, got %v", err)
	}
}

func TestIsBanned(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"is_banned": true})
	})
	banned, err := client.IsBanned(context.Background(), 42)
	if err != nil {
		t.Fatalf("IsBanned: %v", err)
	}
	if !banned {
		t.Error("want banned")
	}
}

func TestIsBannedNoRecord(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	banned, err := client.IsBanned(context.Background(), 42)
	if err != nil {
		t.Fatalf("IsBanned: %v", err)
	}
	if banned {
		t.Error("missing ban record should read as not banned")
	}
}

func TestRegisterConflictReturnsExistingUser(t *testing.T) {
	id := uuid.New()
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/register":
			http.Error(w, `{"detail":"exists"}`, http.StatusConflict)
		case "/v1/users/me":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":          id.String(),
				"telegram_id": 42,
				"name":        "Alice",
				"birth_date":  "2000-12-31T00:00:00Z",
				"gender":      "female",
				"ui_language": "en",
				"is_active":   true,
			})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	user, err := client.Register(context.Background(), schemas.UserIn{TelegramID: 42, Name: "Alice"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID != id {
		t.Errorf("id = %s, want %s", user.ID, id)
	}
}

func TestPlaceNameMissing(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	name, err := client.PlaceName(context.Background(), "abc", "en")
	if err != nil {
		t.Fatalf("PlaceName: %v", err)
	}
	if name != "" {
		t.Errorf("name = %q, want empty", name)
	}
}

func TestErrorBodyTruncated(t *testing.T) {
	big := make([]byte, 4096)
	for i := range big {
		big[i] = 'x'
	}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(big)
	})

	_, err := client.CurrentUser(context.Background(), 42)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *Error, got %v", err)
	}
	if len(apiErr.Body) > maxErrorBodyBytes {
		t.Errorf("body length = %d", len(apiErr.Body))
	}
}
