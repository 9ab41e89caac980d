package main

import (
	"net/http"

	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

const defaultBrowsePageSize = 24

type browseResponse struct {
	Games    []model.Game `json:"games"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

func registerCatalogRoutes(g *echo.Group, cs *services.CatalogService) {
	p := g.Group("/games")

	// BROWSE with filter/sort query
	p.GET("", func(c echo.Context) error {
		q := model.BrowseQuery{
			Text:         c.QueryParam("search"),
			Genre:        c.QueryParam("genre"),
			Bracket:      model.PriceBracket(c.QueryParam("price")),
			Sort:         model.SortKey(c.QueryParam("sort")),
			FeaturedOnly: c.QueryParam("featured") == "true",
			TrendingOnly: c.QueryParam("trending") == "true",
		}

		result := cs.Browse(q)
		total := len(result)

		page := cast.ToInt(c.QueryParam("page"))
		if page < 1 {
			page = 1
		}
		pageSize := cast.ToInt(c.QueryParam("page_size"))
		if pageSize < 1 {
			pageSize = defaultBrowsePageSize
		}

		start := (page - 1) * pageSize
		if start > total {
			start = total
		}
		end := start + pageSize
		if end > total {
			end = total
		}

		return c.JSON(http.StatusOK, browseResponse{
			Games:    result[start:end],
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	})

	// DETAIL by slug
	p.GET("/:slug", func(c echo.Context) error {
		game := cs.BySlug(c.Param("slug"))
		if game == nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "game not found"})
		}
		return c.JSON(http.StatusOK, game)
	})

	// GENRES derived from the catalog
	g.GET("/genres", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"genres": cs.Genres()})
	})
}
