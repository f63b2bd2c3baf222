package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryStoreReturnsEmptySessionForUnknownUser(t *testing.T) {
	store := NewMemoryStore()
	sess, err := store.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess == nil {
		t.Fatal("Get returned nil session")
	}
	if sess.State != StateNone {
		t.Errorf("state = %q, want none", sess.State)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id := uuid.New()
	in := &Session{State: StateSearch}
	in.Data.Locale = "ru"
	in.Data.MatchID = &id
	in.Data.RewindIndex = 2
	if err := store.Save(ctx, 42, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Get(ctx, 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.State != StateSearch || out.Data.Locale != "ru" || out.Data.RewindIndex != 2 {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if out.Data.MatchID == nil || *out.Data.MatchID != id {
		t.Errorf("match id lost: %v", out.Data.MatchID)
	}

	// Mutating the returned session must not touch the stored copy.
	out.Data.Locale = "uz"
	again, _ := store.Get(ctx, 42)
	if again.Data.Locale != "ru" {
		t.Error("stored session mutated through returned pointer")
	}
}

func TestResetKeepsLocale(t *testing.T) {
	sess := &Session{State: StateRegMedia}
	sess.Data.Locale = "uz"
	sess.Data.Name = "Alice"
	sess.Data.RewindIndex = 3

	sess.Reset()

	if sess.State != StateNone {
		t.Errorf("state = %q after reset", sess.State)
	}
	if sess.Data.Locale != "uz" {
		t.Errorf("locale = %q, want uz", sess.Data.Locale)
	}
	if sess.Data.Name != "" || sess.Data.RewindIndex != 0 {
		t.Errorf("data not cleared: %+v", sess.Data)
	}
}

func TestClearDataKeepsState(t *testing.T) {
	sess := &Session{State: StateMenu}
	sess.Data.Locale = "en"
	sess.Data.MatchPage = 4

	sess.ClearData()

	if sess.State != StateMenu {
		t.Errorf("state = %q, want menu", sess.State)
	}
	if sess.Data.Locale != "en" || sess.Data.MatchPage != 0 {
		t.Errorf("unexpected data: %+v", sess.Data)
	}
}

func TestStateFlows(t *testing.T) {
	cases := []struct {
		state State
		flow  Flow
	}{
		{StateNone, FlowNone},
		{StateRegBirthDate, FlowRegistration},
		{StateSearch, FlowBrowse},
		{StateReportReason, FlowBrowse},
		{StateDeactivated, FlowSettings},
		{StateProfileMedia, FlowProfile},
		{StatePreferencesAge, FlowPreferences},
	}
	for _, tc := range cases {
		if got := tc.state.Flow(); got != tc.flow {
			t.Errorf("%q.Flow() = %q, want %q", tc.state, got, tc.flow)
		}
	}

	if State("bogus").Known() {
		t.Error("unknown state reported as known")
	}
	if !StateDeleted.Locked() || !StateDeactivated.Locked() {
		t.Error("terminal states should be locked")
	}
	if StateMenu.Locked() {
		t.Error("menu should not be locked")
	}
}
