package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fothel/collectorvault/internal/handlers"
	"github.com/fothel/collectorvault/internal/middleware/auth"
)

type Deps struct {
	JWTSecret       []byte
	AuthHandler     *handlers.AuthHandler
	ProductHandler  *handlers.ProductHandler
	PurchaseHandler *handlers.PurchaseHandler
	ReviewHandler   *handlers.ReviewHandler
	SearchHandler   *handlers.SearchHandler
}

// ErrorHandler renders every API error as {"msg": "..."} so success and
// failure bodies share one field name.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		} else {
			msg = fmt.Sprintf("%v", he.Message)
		}
	}

	if err := c.JSON(code, echo.Map{"msg": msg}); err != nil {
		c.Logger().Error(err)
	}
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)

	e.GET("/products", d.ProductHandler.GetProducts)
	e.GET("/products/:id/reviews", d.ReviewHandler.ListReviews)
	e.GET("/search", d.SearchHandler.Search)

	login := auth.RequireLogin(d.JWTSecret)

	e.GET("/profile", d.AuthHandler.Profile, login)
	e.POST("/buy/:id", d.PurchaseHandler.Buy, login)
	e.GET("/my-orders", d.PurchaseHandler.MyOrders, login)
	e.POST("/products/:id/reviews", d.ReviewHandler.CreateReview, login)

	e.POST("/products", d.ProductHandler.CreateProduct, login, auth.AdminOnly)
	e.PUT("/products/:id", d.ProductHandler.UpdateProduct, login, auth.AdminOnly)
	e.DELETE("/products/:id", d.ProductHandler.DeleteProduct, login, auth.AdminOnly)
}
