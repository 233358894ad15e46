package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := conversation.NewSession("s1")
	sess.Stage = conversation.StageAwaitingAnimal
	sess.Location = &geo.Location{DisplayName: "Las Vegas, Nevada, United States", City: "Las Vegas"}
	sess.SpeciesCandidates = []taxon.Species{{CommonName: "Desert Tortoise"}}

	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Stage != conversation.StageAwaitingAnimal || got.Location.City != "Las Vegas" {
		t.Fatalf("unexpected session %+v", got)
	}
}

func TestMemoryStoreGetReturnsACopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := conversation.NewSession("s1")
	sess.Location = &geo.Location{City: "Las Vegas"}
	sess.SpeciesCandidates = []taxon.Species{{CommonName: "Desert Tortoise"}}
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	first, _ := store.Get(ctx, "s1")
	first.Location.City = "Reno"
	first.SpeciesCandidates[0].CommonName = "Gila Monster"

	second, _ := store.Get(ctx, "s1")
	if second.Location.City != "Las Vegas" {
		t.Fatalf("stored location mutated through a copy: %+v", second.Location)
	}
	if second.SpeciesCandidates[0].CommonName != "Desert Tortoise" {
		t.Fatalf("stored candidates mutated through a copy")
	}
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStoreRejectsEmptyID(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Put(context.Background(), conversation.Session{}); err == nil {
		t.Fatal("expected an error for a session without an id")
	}
}
