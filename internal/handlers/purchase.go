package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fothel/collectorvault/internal/middleware/auth"
	"github.com/fothel/collectorvault/internal/mykafka"
	"github.com/fothel/collectorvault/internal/service"
)

type PurchaseHandler struct {
	Svc      *service.PurchaseService
	Producer *mykafka.Producer
}

func (h *PurchaseHandler) Buy(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	order, err := h.Svc.Buy(c.Request().Context(), ident.Username, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrOutOfStock):
			return echo.NewHTTPError(http.StatusBadRequest, "out of stock")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":     "order_completed",
		"order_id": order.ID,
		"username": order.Username,
		"product":  order.ProductName,
		"price":    order.Price,
	}); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg": fmt.Sprintf("Purchase of %s successful!", order.ProductName),
	})
}

func (h *PurchaseHandler) MyOrders(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	orders, err := h.Svc.ListOrders(c.Request().Context(), ident.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]echo.Map, 0, len(orders))
	for _, o := range orders {
		out = append(out, echo.Map{
			"product": o.ProductName,
			"price":   o.Price,
			"status":  o.Status,
		})
	}
	return c.JSON(http.StatusOK, out)
}
