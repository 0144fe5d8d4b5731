package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientLoginAndBuy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/login":
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "alice", req["username"])
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok", "role": "user"})
		case "/buy/1":
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]string{"msg": "Purchase of Holo Card successful!"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	api := New(srv.URL, "")
	token, role, err := api.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok", token)
	require.Equal(t, "user", role)

	api = New(srv.URL, token)
	msg, err := api.Buy(context.Background(), 1)
	require.NoError(t, err)
	require.Contains(t, msg, "Holo Card")
}

func TestClientSurfacesServerMsg(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"msg": "out of stock"})
	}))
	defer srv.Close()

	api := New(srv.URL, "tok")
	_, err := api.Buy(context.Background(), 1)
	require.EqualError(t, err, "out of stock")
}

func TestClientConnectionError(t *testing.T) {
	api := New("http://127.0.0.1:1", "")
	_, err := api.Products(context.Background())
	require.Error(t, err)
}
