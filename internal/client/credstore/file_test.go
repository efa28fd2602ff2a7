package credstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStore_SaveRead_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("abc", 24*time.Hour))

	cred, ok := s.Read()
	require.True(t, ok)
	require.Equal(t, "abc", cred.Token)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), cred.ExpiresAt, time.Minute)
}

func TestFileStore_Read_Missing(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Read()
	require.False(t, ok)
}

func TestFileStore_Read_ExpiredClearsFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("abc", -time.Minute))

	_, ok := s.Read()
	require.False(t, ok)
	_, err := os.Stat(s.path)
	require.True(t, os.IsNotExist(err))

	// repeated reads stay absent
	_, ok = s.Read()
	require.False(t, ok)
}

func TestFileStore_Read_MalformedClearsFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o600))

	_, ok := s.Read()
	require.False(t, ok)
	_, err := os.Stat(s.path)
	require.True(t, os.IsNotExist(err))
}

func TestFileStore_Read_MissingTokenClearsFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte(`{"expiresAt": 99999999999999}`), 0o600))

	_, ok := s.Read()
	require.False(t, ok)
	_, err := os.Stat(s.path)
	require.True(t, os.IsNotExist(err))
}

func TestFileStore_Clear_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("abc", time.Hour))

	s.Clear()
	s.Clear()

	_, ok := s.Read()
	require.False(t, ok)
}

func TestFileStore_Save_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save("abc", time.Hour))

	cred, ok := s.Read()
	require.True(t, ok)
	require.Equal(t, "abc", cred.Token)
}

func TestCredential_Valid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		cred Credential
		want bool
	}{
		{name: "valid", cred: Credential{Token: "t", ExpiresAt: now.Add(time.Hour)}, want: true},
		{name: "expired", cred: Credential{Token: "t", ExpiresAt: now.Add(-time.Second)}, want: false},
		{name: "expires exactly now", cred: Credential{Token: "t", ExpiresAt: now}, want: false},
		{name: "empty token", cred: Credential{Token: "", ExpiresAt: now.Add(time.Hour)}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.cred.Valid(now))
		})
	}
}
