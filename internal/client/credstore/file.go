package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// storedCredential is the on-disk format: a single key with the token and
// its expiry as epoch milliseconds.
type storedCredential struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// FileStore keeps the credential in one JSON file (0600).
type FileStore struct {
	path string
	now  func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

func (s *FileStore) Save(token string, ttl time.Duration) error {
	sc := storedCredential{
		Token:     token,
		ExpiresAt: s.now().Add(ttl).UnixMilli(),
	}

	data, err := json.Marshal(sc)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Read() (Credential, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credential{}, false
	}

	var sc storedCredential
	if err := json.Unmarshal(data, &sc); err != nil || sc.Token == "" {
		s.Clear()
		return Credential{}, false
	}

	cred := Credential{
		Token:     sc.Token,
		ExpiresAt: time.UnixMilli(sc.ExpiresAt),
	}
	if !cred.Valid(s.now()) {
		s.Clear()
		return Credential{}, false
	}
	return cred, true
}

func (s *FileStore) Clear() {
	_ = os.Remove(s.path)
}
