package main

import (
	"net/http"

	"GameVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	GameID string `json:"gameid"`
}

type updateCartRequest struct {
	Qty int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService, catalog *services.CatalogService) {
	p := g.Group("/cart")

	// GET cart
	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, cs.Get(c.Request().Context()))
	})

	// ADD item (repeat adds bump quantity)
	p.POST("", func(c echo.Context) error {
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil || req.GameID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		game := catalog.ByID(req.GameID)
		if game == nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "game not found"})
		}
		if err := cs.Add(c.Request().Context(), *game); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added"})
	})

	// UPDATE quantity (zero or less removes)
	p.PUT("/:gameid", func(c echo.Context) error {
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.UpdateQuantity(c.Request().Context(), c.Param("gameid"), req.Qty); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	// REMOVE item
	p.DELETE("/:gameid", func(c echo.Context) error {
		if err := cs.Remove(c.Request().Context(), c.Param("gameid")); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		if err := cs.Clear(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
