package secretstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// fileStore persists the credential as a small JSON document on disk,
// readable only by the owning user. A mutex serializes mutation so concurrent
// sign-ins resolve last-writer-wins on a whole document, never a torn write.
type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore is the constructor for fileStore.
func NewFileStore(path string) repository.CredentialRepository {
	return &fileStore{path: path}
}

func (s *fileStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read()
	if err != nil {
		return "", err
	}

	token, ok := slots[repository.CredentialKey]
	if !ok || token == "" {
		return "", repository.ErrCredentialNotFound
	}

	return token, nil
}

func (s *fileStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read()
	if err != nil {
		return err
	}

	slots[repository.CredentialKey] = token

	return s.write(slots)
}

func (s *fileStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read()
	if err != nil {
		return err
	}

	// Deleting an absent credential is not an error.
	if _, ok := slots[repository.CredentialKey]; !ok {
		return nil
	}

	delete(slots, repository.CredentialKey)

	return s.write(slots)
}

func (s *fileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read credential file")
	}

	slots := map[string]string{}
	if len(raw) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, errors.Wrap(err, "parse credential file")
	}

	return slots, nil
}

func (s *fileStore) write(slots map[string]string) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return errors.Wrap(err, "encode credential file")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "create credential dir")
		}
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "write credential file")
	}

	return nil
}
