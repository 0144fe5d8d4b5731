package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/fothel/collectorvault/internal/hash"
	"github.com/fothel/collectorvault/internal/middleware/auth"
	"github.com/fothel/collectorvault/internal/models"
	"github.com/fothel/collectorvault/internal/mykafka"
	"github.com/fothel/collectorvault/internal/service"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret []byte
	Producer  *mykafka.Producer
}

func (h *AuthHandler) publish(c echo.Context, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Role == "" {
		req.Role = models.RoleUser
	}

	var violations []string
	if len(req.Username) < 3 {
		violations = append(violations, "username must be at least 3 characters")
	}
	if len(req.Password) < 4 {
		violations = append(violations, "password must be at least 4 characters")
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		violations = append(violations, "role must be 'user' or 'admin'")
	}
	if len(violations) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, strings.Join(violations, "; "))
	}

	var existing models.User
	err := h.DB.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not register user")
	}

	h.publish(c, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusCreated, echo.Map{"msg": "user registered successfully"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	// Same message for unknown user and wrong password, so login failures
	// never confirm that a username exists.
	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := service.SignAccessToken(&user, h.JWTSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create access token")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"role":         user.Role,
	})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	var user models.User
	if err := h.DB.Where("username = ?", ident.Username).First(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}
