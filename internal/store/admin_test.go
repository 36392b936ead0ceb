package store

import (
	"testing"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
)

func newAdmin(t *testing.T, username, email string) *models.Admin {
	t.Helper()
	admin := &models.Admin{
		AdminID:  "id-" + username,
		Username: username,
		Email:    email,
		Role:     models.RoleAdmin,
	}
	if err := admin.SetPassword("password123"); err != nil {
		t.Fatal(err)
	}
	return admin
}

func TestAdminStoreCreateAndAuth(t *testing.T) {
	s := NewAdminStore(testDB(t))

	if err := s.Create(newAdmin(t, "alice", "alice@example.com")); err != nil {
		t.Fatal(err)
	}

	admin, err := s.FindByUsername("alice")
	if err != nil || admin == nil {
		t.Fatalf("find: %+v, %v", admin, err)
	}
	if !admin.CheckPassword("password123") {
		t.Fatal("password check failed")
	}
	if admin.CheckPassword("wrong") {
		t.Fatal("wrong password accepted")
	}

	err = s.Create(newAdmin(t, "alice", "other@example.com"))
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("duplicate username: want conflict, got %v", err)
	}
}

func TestAdminStoreUpdateLastLogin(t *testing.T) {
	s := NewAdminStore(testDB(t))

	if err := s.Create(newAdmin(t, "alice", "alice@example.com")); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateLastLogin("alice"); err != nil {
		t.Fatal(err)
	}
	admin, err := s.FindByUsername("alice")
	if err != nil {
		t.Fatal(err)
	}
	if admin.LastLogin == nil {
		t.Fatal("last_login not set")
	}
}

func TestAdminStoreDelete(t *testing.T) {
	s := NewAdminStore(testDB(t))

	admin := newAdmin(t, "alice", "alice@example.com")
	if err := s.Create(admin); err != nil {
		t.Fatal(err)
	}
	deleted, err := s.Delete(admin.AdminID)
	if err != nil || !deleted {
		t.Fatalf("delete = %v, %v", deleted, err)
	}
	deleted, err = s.Delete(admin.AdminID)
	if err != nil {
		t.Fatal(err)
	}
	if deleted {
		t.Fatal("second delete should report false")
	}
}
