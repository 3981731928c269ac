package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
)

// FileStore keeps the session in a JSON file keyed like browser storage
// ({"token": "...", "userInfo": "{...}"}). Every read goes to disk so a
// login from another process is seen without restart.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed session store
func NewFileStore(path string) providers.SessionStore {
	return &FileStore{path: path}
}

// Token returns the stored bearer token, or "" when nobody is logged in
func (s *FileStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", err
	}
	return data[providers.SessionKeyToken], nil
}

// SetToken stores the bearer token
func (s *FileStore) SetToken(ctx context.Context, token string) error {
	return s.update(func(data map[string]string) {
		data[providers.SessionKeyToken] = token
	})
}

// UserInfo returns the cached profile, or nil when none is stored
func (s *FileStore) UserInfo(ctx context.Context) (*entities.UserInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return decodeUserInfo(data[providers.SessionKeyUserInfo])
}

// SetUserInfo caches the profile. A nil info removes it.
func (s *FileStore) SetUserInfo(ctx context.Context, info *entities.UserInfo) error {
	encoded, err := encodeUserInfo(info)
	if err != nil {
		return err
	}
	return s.update(func(data map[string]string) {
		if encoded == "" {
			delete(data, providers.SessionKeyUserInfo)
			return
		}
		data[providers.SessionKeyUserInfo] = encoded
	})
}

// Clear deletes the session file
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *FileStore) update(fn func(map[string]string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	fn(data)
	return s.write(data)
}

func (s *FileStore) read() (map[string]string, error) {
	data := make(map[string]string)
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode session file %s: %w", s.path, err)
	}
	return data, nil
}

func (s *FileStore) write(data map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func encodeUserInfo(info *entities.UserInfo) (string, error) {
	if info == nil {
		return "", nil
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("failed to encode user info: %w", err)
	}
	return string(raw), nil
}

func decodeUserInfo(raw string) (*entities.UserInfo, error) {
	if raw == "" {
		return nil, nil
	}
	var info entities.UserInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}
