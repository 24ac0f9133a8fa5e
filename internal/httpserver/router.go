package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AccountHandler *AccountHTTP
	CatalogHandler *CatalogHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/register", d.AccountHandler.Register)
	e.POST("/login", d.AccountHandler.Login)
	e.PUT("/users/profile", d.AccountHandler.UpdateProfile)

	e.GET("/products", d.CatalogHandler.GetProducts)
	e.POST("/products", d.CatalogHandler.CreateProduct)
}
