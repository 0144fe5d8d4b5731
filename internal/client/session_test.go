package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := &Session{
		BaseURL:  "http://127.0.0.1:8080",
		Token:    "abc",
		Role:     "admin",
		Username: "boss",
	}
	require.NoError(t, s.Save(path))

	loaded, err := LoadSession(path)
	require.NoError(t, err)
	require.Equal(t, s, loaded)
	require.True(t, loaded.LoggedIn())
	require.True(t, loaded.IsAdmin())
}

func TestLoadSessionMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "session.json")

	s, err := LoadSession(path)
	require.NoError(t, err)
	require.False(t, s.LoggedIn())
	require.False(t, s.IsAdmin())
}

func TestSessionClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := &Session{Token: "abc", Role: "user", Username: "alice"}
	require.NoError(t, s.Save(path))
	require.NoError(t, s.Clear(path))
	require.False(t, s.LoggedIn())

	loaded, err := LoadSession(path)
	require.NoError(t, err)
	require.False(t, loaded.LoggedIn())
}
