package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/repository"
)

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	if _, err := svc.Register(RegisterInput{
		Email: "j.phiri@example.com", Password: "secret1", FirstName: "J", LastName: "Phiri",
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(RegisterInput{
		Email: "J.PHIRI@example.com", Password: "secret2", FirstName: "J", LastName: "Phiri",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	var count int64
	db.Model(&entity.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one user, got %d", count)
	}
}

func TestRegisterCreatesDriver(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	user, err := svc.Register(RegisterInput{
		Email: "Driver@Example.com", Password: "secret1", FirstName: "A", LastName: "B",
		LicenseNumber: "DL-1234",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != entity.RoleDriver {
		t.Fatalf("expected role driver, got %s", user.Role)
	}
	if user.Email != "driver@example.com" {
		t.Fatalf("email not lowercased: %s", user.Email)
	}
	if user.Password == "secret1" {
		t.Fatal("password stored in plain text")
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	if _, err := svc.Register(RegisterInput{
		Email: "login@example.com", Password: "secret1", FirstName: "A", LastName: "B",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login("LOGIN@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Email != "login@example.com" {
		t.Fatalf("unexpected user: %s", user.Email)
	}

	if _, _, err := svc.Login("login@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := svc.Login("absent@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUpdateProfileIgnoresEmailAndRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	user, err := svc.Register(RegisterInput{
		Email: "p@example.com", Password: "secret1", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := svc.UpdateProfile(user.ID, map[string]any{
		"first_name": "New",
		"email":      "hacker@example.com",
		"role":       entity.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FirstName != "New" {
		t.Fatalf("first name not updated: %s", updated.FirstName)
	}
	if updated.Email != "p@example.com" || updated.Role != entity.RoleDriver {
		t.Fatalf("email/role must not change via profile: %s %s", updated.Email, updated.Role)
	}
}

func TestDuplicateEmailIndexErrorRecognized(t *testing.T) {
	db := newTestDB(t)

	seedUser(t, db, "race@example.com", entity.RoleDriver)

	// a concurrent registration that beat the count check trips the
	// email index; the error must map to the domain conflict
	err := db.Create(&entity.User{
		Email: "race@example.com", Password: "x",
		FirstName: "Test", LastName: "User",
		Role: entity.RoleDriver, Status: entity.UserActive,
	}).Error
	if err == nil || !isDuplicateKey(err) {
		t.Fatalf("email index violation not recognized as duplicate key: %v", err)
	}
}
