package main

import (
	"net/http"
	"time"

	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/pricefeed"
	"GameVaultAPI/internal/services"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type pricedGame struct {
	model.Game
	TimeLeft string `json:"timeLeft,omitempty"`
}

func registerPricingRoutes(g *echo.Group, ps *services.PricingService, hub *pricefeed.Hub) {
	p := g.Group("/pricing")

	// SNAPSHOT with countdown strings
	p.GET("", func(c echo.Context) error {
		now := time.Now().UTC()
		games := ps.Games()
		out := make([]pricedGame, 0, len(games))
		for _, game := range games {
			pg := pricedGame{Game: game}
			if game.DiscountEndsAt != nil {
				pg.TimeLeft = services.FormatCountdown(*game.DiscountEndsAt, now)
			}
			out = append(out, pg)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"games":      out,
			"lastUpdate": ps.LastUpdate(),
			"listeners":  hub.Count(),
		})
	})

	// LIVE feed
	p.GET("/ws", func(c echo.Context) error {
		ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}
		hub.Add(ws)
		defer hub.Remove(ws)

		// hold the connection open until the client goes away
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}
		return nil
	})
}
