package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fothel/collectorvault/internal/models"
)

func TestCreateAndListReviews(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "secret", models.RoleUser)
	require.NoError(t, env.DB.Create(&models.Product{Name: "Holo Card", Type: "Card", Price: 50, Stock: 2}).Error)

	rec, c := env.doJSONRequest(t, http.MethodPost, "/products/1/reviews", map[string]any{"comment": "mint condition", "rating": 5})
	c.SetParamNames("id")
	c.SetParamValues("1")
	asIdentity(c, user)
	require.NoError(t, env.R.CreateReview(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = env.doJSONRequest(t, http.MethodGet, "/products/1/reviews", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.R.ListReviews(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var reviews []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	require.Equal(t, "alice", reviews[0]["username"])
	require.Equal(t, "mint condition", reviews[0]["comment"])
	require.Equal(t, 5.0, reviews[0]["rating"])
}

func TestCreateReviewValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "secret", models.RoleUser)
	require.NoError(t, env.DB.Create(&models.Product{Name: "Holo Card", Type: "Card", Price: 50, Stock: 2}).Error)

	for _, rating := range []int{0, 6, -1} {
		_, c := env.doJSONRequest(t, http.MethodPost, "/products/1/reviews", map[string]any{"rating": rating})
		c.SetParamNames("id")
		c.SetParamValues("1")
		asIdentity(c, user)
		requireHTTPError(t, env.R.CreateReview(c), http.StatusBadRequest)
	}
}

func TestReviewsUnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "secret", models.RoleUser)

	_, c := env.doJSONRequest(t, http.MethodPost, "/products/9/reviews", map[string]any{"rating": 4})
	c.SetParamNames("id")
	c.SetParamValues("9")
	asIdentity(c, user)
	requireHTTPError(t, env.R.CreateReview(c), http.StatusNotFound)

	_, c = env.doJSONRequest(t, http.MethodGet, "/products/9/reviews", nil)
	c.SetParamNames("id")
	c.SetParamValues("9")
	requireHTTPError(t, env.R.ListReviews(c), http.StatusNotFound)
}
