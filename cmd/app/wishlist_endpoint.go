package main

import (
	"net/http"

	"GameVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type wishlistRequest struct {
	GameID string `json:"gameid"`
}

func registerWishlistRoutes(g *echo.Group, ws *services.WishlistService) {
	p := g.Group("/wishlist")

	// GET wishlist ids
	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"ids": ws.IDs()})
	})

	// ADD id (idempotent)
	p.POST("", func(c echo.Context) error {
		req := new(wishlistRequest)
		if err := c.Bind(req); err != nil || req.GameID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ws.Add(c.Request().Context(), req.GameID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added"})
	})

	// TOGGLE membership
	p.POST("/toggle", func(c echo.Context) error {
		req := new(wishlistRequest)
		if err := c.Bind(req); err != nil || req.GameID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		in, err := ws.Toggle(c.Request().Context(), req.GameID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"inWishlist": in})
	})

	// REMOVE id
	p.DELETE("/:gameid", func(c echo.Context) error {
		if err := ws.Remove(c.Request().Context(), c.Param("gameid")); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})
}
