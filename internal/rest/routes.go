package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes builds the echo instance carrying the public API.
func RegisterRoutes(h *BlogHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")
	api.GET("/posts", h.Posts)
	api.GET("/posts/:alias", h.PostByAlias)
	api.GET("/posts/:alias/tags", h.PostTags)
	api.GET("/pages", h.Pages)
	api.GET("/categories", h.Categories)
	api.GET("/tags", h.Tags)
	api.GET("/tags/:alias/posts", h.TagPosts)
	api.GET("/icons", h.Icons)
	api.POST("/login", h.Login)

	return e
}
