package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"GameVaultAPI/external/rawg"
	"GameVaultAPI/internal/catalogdata"
	"GameVaultAPI/internal/config"
	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/pricefeed"
	"GameVaultAPI/internal/repository"
	"GameVaultAPI/internal/services"
	"GameVaultAPI/internal/storage"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// ======================
	// CONFIG
	// ======================
	cfg, err := config.Load(os.Getenv("GAMEVAULT_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	config.InitLogger(cfg.Logger)
	defer zap.L().Sync()

	// ======================
	// INFRA
	// ======================
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		zap.S().Fatal(err)
	}
	store, err := storage.Open(filepath.Join(cfg.DataDir, "gamevault.db"))
	if err != nil {
		zap.S().Fatal(err)
	}
	defer store.Close()

	bus := EventBus.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ======================
	// CATALOG
	// ======================
	var source services.CatalogSource
	if cfg.Catalog.Source == "rawg" {
		source = rawg.NewClient(cfg.Catalog.RawgAPIKey, cfg.Catalog.PageSize)
	} else {
		source = catalogdata.Source{}
	}
	catalogSvc := services.NewCatalogService(source)
	if err := catalogSvc.Refresh(ctx); err != nil {
		// an unreachable upstream leaves an empty catalog, not a dead server
		zap.S().Warnw("catalog refresh failed", "err", err)
	}

	// ======================
	// REPOSITORIES
	// ======================
	cartRepo := repository.NewCartRepository(store)
	wishlistRepo := repository.NewWishlistRepository(store)
	sessionRepo := repository.NewSessionRepository(store)

	// ======================
	// SERVICES
	// ======================
	cartSvc, err := services.NewCartService(cartRepo, bus)
	if err != nil {
		zap.S().Fatal(err)
	}
	wishlistSvc, err := services.NewWishlistService(wishlistRepo, bus)
	if err != nil {
		zap.S().Fatal(err)
	}
	sessionSvc, err := services.NewSessionService(sessionRepo, bus)
	if err != nil {
		zap.S().Fatal(err)
	}

	pricingSvc := services.NewPricingService(bus, catalogSvc.Games(), cfg.PricingInterval())
	pricingSvc.Start(ctx)

	hub := pricefeed.NewHub()
	if err := bus.Subscribe(services.TopicPricingUpdated, func(event model.PricingEvent) {
		hub.Broadcast(event)
	}); err != nil {
		zap.S().Fatal(err)
	}

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/game-vault")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCatalogRoutes(api, catalogSvc)
	registerCartRoutes(api, cartSvc, catalogSvc)
	registerWishlistRoutes(api, wishlistSvc)
	registerSessionRoutes(api, sessionSvc)
	registerPricingRoutes(api, pricingSvc, hub)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(cfg.Listen))
}
