package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/fothel/collectorvault/internal/es"
	"github.com/fothel/collectorvault/internal/models"
	"github.com/fothel/collectorvault/internal/mykafka"
)

type ProductHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
	Indexer  *es.Indexer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["product_id"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *ProductHandler) index(c echo.Context, p *models.Product) {
	if err := h.Indexer.IndexProduct(c.Request().Context(), p); err != nil {
		c.Logger().Errorf("search index error: %v", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	products := make([]models.Product, 0)
	if err := h.DB.Order("id ASC").Find(&products).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req struct {
		Name  string  `json:"name"`
		Type  string  `json:"type"`
		Price float64 `json:"price"`
		Stock int     `json:"stock"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var violations []string
	if req.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if !models.ValidProductType(req.Type) {
		violations = append(violations, "type must be one of: "+strings.Join(models.ProductTypes, ", "))
	}
	if req.Price <= 0 {
		violations = append(violations, "price must be greater than 0")
	}
	if req.Stock < 0 {
		violations = append(violations, "stock must not be negative")
	}
	if len(violations) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, strings.Join(violations, "; "))
	}

	prod := models.Product{
		Name:  req.Name,
		Type:  req.Type,
		Price: req.Price,
		Stock: uint(req.Stock),
	}
	if err := h.DB.Create(&prod).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.index(c, &prod)
	h.publish(c, map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	})

	return c.JSON(http.StatusCreated, echo.Map{"msg": "product created successfully"})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	// Pointer fields distinguish "omitted" from zero values, so a partial
	// payload only touches what it names.
	var req struct {
		Name  *string  `json:"name"`
		Type  *string  `json:"type"`
		Price *float64 `json:"price"`
		Stock *int     `json:"stock"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == nil && req.Type == nil && req.Price == nil && req.Stock == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	var violations []string
	if req.Name != nil && *req.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if req.Type != nil && !models.ValidProductType(*req.Type) {
		violations = append(violations, "type must be one of: "+strings.Join(models.ProductTypes, ", "))
	}
	if req.Price != nil && *req.Price <= 0 {
		violations = append(violations, "price must be greater than 0")
	}
	if req.Stock != nil && *req.Stock < 0 {
		violations = append(violations, "stock must not be negative")
	}
	if len(violations) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, strings.Join(violations, "; "))
	}

	var prod models.Product
	if err := h.DB.First(&prod, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Type != nil {
		prod.Type = *req.Type
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Stock != nil {
		prod.Stock = uint(*req.Stock)
	}

	if err := h.DB.Save(&prod).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.index(c, &prod)
	h.publish(c, map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
	})

	return c.JSON(http.StatusOK, echo.Map{"msg": "product updated"})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	res := h.DB.Delete(&models.Product{}, id)
	if res.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	if err := h.Indexer.DeleteProduct(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("search index error: %v", err)
	}
	h.publish(c, map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"msg": "product deleted"})
}
