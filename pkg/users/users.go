// Package users keeps the user accounts in a single JSON file, passwords
// stored as bcrypt hashes.
package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type account struct {
	PasswordHash string `json:"password_hash"`
}

type Store struct {
	mutex    sync.Mutex
	filepath string
}

func NewStore(filepath string) (*Store, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		if err := os.WriteFile(filepath, []byte("{}"), 0600); err != nil {
			return nil, fmt.Errorf("failed to create users file: %w", err)
		}
	}

	return &Store{filepath: filepath}, nil
}

// Register creates the account, rejecting duplicates with ErrUserExists.
func (s *Store) Register(username, password string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	accounts, err := s.readAccounts()
	if err != nil {
		return err
	}

	if _, ok := accounts[username]; ok {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	accounts[username] = account{PasswordHash: string(hash)}

	return s.writeAccounts(accounts)
}

// Authenticate returns ErrInvalidCredentials for unknown usernames and wrong
// passwords alike.
func (s *Store) Authenticate(username, password string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	accounts, err := s.readAccounts()
	if err != nil {
		return err
	}

	acc, ok := accounts[username]
	if !ok {
		return ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	return nil
}

func (s *Store) Exists(username string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	accounts, err := s.readAccounts()
	if err != nil {
		return false, err
	}

	_, ok := accounts[username]
	return ok, nil
}

func (s *Store) readAccounts() (map[string]account, error) {
	data, err := os.ReadFile(s.filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	accounts := make(map[string]account)
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users file: %w", err)
	}

	return accounts, nil
}

func (s *Store) writeAccounts(accounts map[string]account) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	if err := os.WriteFile(s.filepath, data, 0600); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	return nil
}
