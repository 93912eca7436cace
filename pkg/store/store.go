package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// document is the on-disk shape of the account store.
type document struct {
	Accounts map[string]string `json:"accounts"`
}

// Store maps account names to personal access tokens, backed by a single
// JSON document. Mutations persist immediately; there is no locking, the
// last writer wins.
type Store struct {
	path     string
	accounts map[string]string
}

// Load reads the store at path. A missing or corrupt file yields an empty,
// usable store; corruption is only warned about and the file is overwritten
// on the next save.
func Load(path string) *Store {
	s := &Store{path: path, accounts: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("account store unreadable, starting empty", "path", path, "error", err)
		}
		return s
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("account store corrupt, starting empty", "path", path, "error", err)
		return s
	}
	if doc.Accounts != nil {
		s.accounts = doc.Accounts
	}
	return s
}

// Add stores or silently overwrites an account and persists the store.
func (s *Store) Add(name, token string) error {
	s.accounts[name] = token
	return s.save()
}

// Remove deletes an account. It reports false without touching the file when
// the name is unknown.
func (s *Store) Remove(name string) (bool, error) {
	if _, ok := s.accounts[name]; !ok {
		return false, nil
	}
	delete(s.accounts, name)
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the token for an account.
func (s *Store) Get(name string) (string, bool) {
	token, ok := s.accounts[name]
	return token, ok
}

// Names returns all account names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of stored accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(document{Accounts: s.accounts}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account store: %w", err)
	}
	// Tokens live in this file, keep it private to the user.
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write account store: %w", err)
	}
	return nil
}
