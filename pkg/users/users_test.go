package users

import (
	"errors"
	"path/filepath"
	"testing"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store, path
}

func TestStore_RegisterAndAuthenticate(t *testing.T) {
	store, _ := newStore(t)

	if err := store.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := store.Authenticate("alice", "s3cret"); err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if err := store.Authenticate("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := store.Authenticate("nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestStore_RegisterRejectsDuplicates(t *testing.T) {
	store, _ := newStore(t)

	if err := store.Register("bob", "one"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := store.Register("bob", "two"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestStore_AccountsSurviveReopen(t *testing.T) {
	store, path := newStore(t)

	if err := store.Register("carol", "pw"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}

	ok, err := reopened.Exists("carol")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected carol to survive reopen")
	}
	if err := reopened.Authenticate("carol", "pw"); err != nil {
		t.Fatalf("Authenticate after reopen failed: %v", err)
	}
}
