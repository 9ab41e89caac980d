package main

import (
	"net/http"

	"GameVaultAPI/internal/middleware"
	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type signInRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func registerSessionRoutes(g *echo.Group, ss *services.SessionService) {
	p := g.Group("/auth")

	// SIGN IN (replaces any existing session)
	p.POST("/sign-in", func(c echo.Context) error {
		req := new(signInRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		profile, err := ss.SignIn(c.Request().Context(), req.Name, req.Email)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		token, err := middleware.GenerateToken(profile.ID, profile.Email, 72)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"user": profile, "token": token})
	})

	authed := p.Group("")
	authed.Use(middleware.JWTMiddleware())

	// CURRENT user
	authed.GET("/me", func(c echo.Context) error {
		profile := currentProfile(c, ss)
		if profile == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no active session"})
		}
		return c.JSON(http.StatusOK, profile)
	})

	// UPDATE profile (only name/email)
	authed.PUT("/me", func(c echo.Context) error {
		if currentProfile(c, ss) == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no active session"})
		}
		upd := new(model.ProfileUpdate)
		if err := c.Bind(upd); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		profile, err := ss.Update(c.Request().Context(), *upd)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if profile == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no active session"})
		}
		return c.JSON(http.StatusOK, profile)
	})

	// SIGN OUT
	authed.POST("/sign-out", func(c echo.Context) error {
		if err := ss.SignOut(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "signed out"})
	})
}

// currentProfile returns the signed-in profile only when the token belongs
// to it; a token from a replaced session is rejected.
func currentProfile(c echo.Context, ss *services.SessionService) *model.UserProfile {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return nil
	}
	profile := ss.Current()
	if profile == nil || profile.ID != claims.SessionID {
		return nil
	}
	return profile
}
