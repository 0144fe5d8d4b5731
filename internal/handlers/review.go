package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/fothel/collectorvault/internal/middleware/auth"
	"github.com/fothel/collectorvault/internal/models"
)

type ReviewHandler struct {
	DB *gorm.DB
}

func (h *ReviewHandler) productID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	var prod models.Product
	if err := h.DB.First(&prod, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return 0, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return id, nil
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	id, err := h.productID(c)
	if err != nil {
		return err
	}

	var reviews []models.Review
	if err := h.DB.Where("product_id = ?", id).Order("id ASC").Find(&reviews).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]echo.Map, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, echo.Map{
			"username": r.Username,
			"comment":  r.Comment,
			"rating":   r.Rating,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	id, err := h.productID(c)
	if err != nil {
		return err
	}

	var req struct {
		Comment string `json:"comment"`
		Rating  int    `json:"rating"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	review := models.Review{
		ProductID: id,
		Username:  ident.Username,
		Comment:   req.Comment,
		Rating:    req.Rating,
	}
	if err := h.DB.Create(&review).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"msg": "review added"})
}
