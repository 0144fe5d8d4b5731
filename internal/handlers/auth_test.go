package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fothel/collectorvault/internal/models"
	"github.com/fothel/collectorvault/internal/service"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{"username": "alice", "password": "secret", "role": "user"}
	rec, c := env.doJSONRequest(t, http.MethodPost, "/register", payload)
	require.NoError(t, env.A.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, env.DB.Where("username = ?", "alice").First(&user).Error)
	require.Equal(t, "user", user.Role)
	require.NotEqual(t, "secret", user.PasswordHash)
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "secret", models.RoleUser)

	payload := map[string]string{"username": "alice", "password": "secret"}
	_, c := env.doJSONRequest(t, http.MethodPost, "/register", payload)
	he := requireHTTPError(t, env.A.Register(c), http.StatusBadRequest)
	require.Contains(t, he.Message, "already exists")
}

func TestRegisterDefaultsRole(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{"username": "bob", "password": "secret"}
	rec, c := env.doJSONRequest(t, http.MethodPost, "/register", payload)
	require.NoError(t, env.A.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, env.DB.Where("username = ?", "bob").First(&user).Error)
	require.Equal(t, models.RoleUser, user.Role)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name    string
		payload map[string]string
	}{
		{"short username", map[string]string{"username": "ab", "password": "secret"}},
		{"short password", map[string]string{"username": "alice", "password": "abc"}},
		{"bad role", map[string]string{"username": "alice", "password": "secret", "role": "root"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c := env.doJSONRequest(t, http.MethodPost, "/register", tc.payload)
			requireHTTPError(t, env.A.Register(c), http.StatusBadRequest)
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "secret", models.RoleAdmin)

	payload := map[string]string{"username": "alice", "password": "secret"}
	rec, c := env.doJSONRequest(t, http.MethodPost, "/login", payload)
	require.NoError(t, env.A.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "admin", resp["role"])
	require.NotEmpty(t, resp["access_token"])

	ident, err := service.ParseAccessToken(resp["access_token"], []byte(testSecret))
	require.NoError(t, err)
	require.Equal(t, "alice", ident.Username)
	require.Equal(t, "admin", ident.Role)
}

func TestLoginUniformFailure(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "secret", models.RoleUser)

	// Unknown user and wrong password must be indistinguishable.
	_, c1 := env.doJSONRequest(t, http.MethodPost, "/login", map[string]string{"username": "nobody", "password": "secret"})
	he1 := requireHTTPError(t, env.A.Login(c1), http.StatusUnauthorized)

	_, c2 := env.doJSONRequest(t, http.MethodPost, "/login", map[string]string{"username": "alice", "password": "wrong"})
	he2 := requireHTTPError(t, env.A.Login(c2), http.StatusUnauthorized)

	require.Equal(t, he1.Message, he2.Message)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "secret", models.RoleUser)

	rec, c := env.doJSONRequest(t, http.MethodGet, "/profile", nil)
	asIdentity(c, user)
	require.NoError(t, env.A.Profile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "alice", resp["username"])
	require.Equal(t, "user", resp["role"])
}

func TestProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "secret", models.RoleUser)
	require.NoError(t, env.DB.Delete(user).Error)

	_, c := env.doJSONRequest(t, http.MethodGet, "/profile", nil)
	asIdentity(c, user)
	requireHTTPError(t, env.A.Profile(c), http.StatusNotFound)
}
