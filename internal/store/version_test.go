package store

import (
	"testing"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
)

func TestVersionStoreCompositeKey(t *testing.T) {
	s := NewVersionStore(testDB(t))

	if err := s.Create(sampleVersion("g1", "1.0")); err != nil {
		t.Fatalf("create: %v", err)
	}
	// same version under another game is fine
	if err := s.Create(sampleVersion("g2", "1.0")); err != nil {
		t.Fatalf("create other game: %v", err)
	}
	// duplicate composite key is not
	err := s.Create(sampleVersion("g1", "1.0"))
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("duplicate composite key: want conflict, got %v", err)
	}
}

func TestVersionStoreFindByID(t *testing.T) {
	s := NewVersionStore(testDB(t))

	v := sampleVersion("g1", "1.0")
	if err := s.Create(v); err != nil {
		t.Fatal(err)
	}
	if v.ID == 0 {
		t.Fatal("create did not assign an id")
	}

	got, err := s.FindByID(v.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.GameVersion != "1.0" {
		t.Fatalf("FindByID: %+v", got)
	}

	missing, err := s.FindByID(v.ID + 100)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestVersionStoreFindAllFilters(t *testing.T) {
	s := NewVersionStore(testDB(t))

	prod := sampleVersion("g1", "1.0")
	test := sampleVersion("g1", "2.0")
	test.Type = models.GameTypeTest
	inactive := sampleVersion("g2", "1.0")
	inactive.IsActive = false
	for _, v := range []*models.GameVersion{prod, test, inactive} {
		if err := s.Create(v); err != nil {
			t.Fatal(err)
		}
	}

	byType, err := s.FindAll(VersionFilter{Type: models.GameTypeTest})
	if err != nil {
		t.Fatal(err)
	}
	if len(byType) != 1 || byType[0].GameVersion != "2.0" {
		t.Fatalf("type filter: %+v", byType)
	}

	active := true
	byActive, err := s.FindAll(VersionFilter{IsActive: &active})
	if err != nil {
		t.Fatal(err)
	}
	if len(byActive) != 2 {
		t.Fatalf("active filter: %d records", len(byActive))
	}
}

func TestVersionStoreUpdate(t *testing.T) {
	s := NewVersionStore(testDB(t))

	if err := s.Create(sampleVersion("g1", "1.0")); err != nil {
		t.Fatal(err)
	}

	updated, err := s.Update("g1", "1.0", map[string]interface{}{"description": "new desc"})
	if err != nil {
		t.Fatal(err)
	}
	if updated == nil || updated.Description != "new desc" {
		t.Fatalf("update: %+v", updated)
	}

	// renaming the version keeps the record reachable under the new key
	renamed, err := s.Update("g1", "1.0", map[string]interface{}{"game_version": "1.1"})
	if err != nil {
		t.Fatal(err)
	}
	if renamed == nil || renamed.GameVersion != "1.1" {
		t.Fatalf("rename: %+v", renamed)
	}

	none, err := s.Update("g1", "9.9", map[string]interface{}{"description": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Fatal("update of missing version should return nil")
	}
}

func TestVersionStoreDeleteAllByGameID(t *testing.T) {
	s := NewVersionStore(testDB(t))

	for _, ver := range []string{"1.0", "1.1", "2.0"} {
		if err := s.Create(sampleVersion("g1", ver)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Create(sampleVersion("g2", "1.0")); err != nil {
		t.Fatal(err)
	}

	count, err := s.DeleteAllByGameID("g1")
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("cascade removed %d rows, want 3", count)
	}

	left, err := s.FindByGameID("g2")
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1 {
		t.Fatalf("other game's versions disturbed: %+v", left)
	}
}
