package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fothel/collectorvault/internal/hash"
	"github.com/fothel/collectorvault/internal/middleware/auth"
	"github.com/fothel/collectorvault/internal/models"
	"github.com/fothel/collectorvault/internal/service"
)

const testSecret = "test-secret"

type testEnv struct {
	E  *echo.Echo
	DB *gorm.DB
	A  *AuthHandler
	P  *ProductHandler
	B  *PurchaseHandler
	R  *ReviewHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.Review{}))

	secret := []byte(testSecret)
	return &testEnv{
		E:  echo.New(),
		DB: db,
		A:  &AuthHandler{DB: db, JWTSecret: secret},
		P:  &ProductHandler{DB: db},
		B:  &PurchaseHandler{Svc: &service.PurchaseService{DB: db}},
		R:  &ReviewHandler{DB: db},
	}
}

func (env *testEnv) doJSONRequest(t *testing.T, method, target string, payload any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createUser(t *testing.T, username, password, role string) *models.User {
	t.Helper()

	passwordHash, err := hash.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{Username: username, PasswordHash: passwordHash, Role: role}
	require.NoError(t, env.DB.Create(user).Error)
	return user
}

func asIdentity(c echo.Context, u *models.User) {
	auth.SetIdentity(c, &service.Identity{UserID: u.ID, Username: u.Username, Role: u.Role})
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
	return he
}
