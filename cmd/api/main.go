package main

import (
	"context"
	"log"
	"time"

	"carrier-sales/internal/core/cache"
	"carrier-sales/internal/core/config"
	"carrier-sales/internal/core/database"
	"carrier-sales/internal/core/httpclient"
	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/core/server"
	bookingadapters "carrier-sales/internal/features/bookings/adapters"
	bookinghandler "carrier-sales/internal/features/bookings/handler"
	bookingservice "carrier-sales/internal/features/bookings/service"
	calladapters "carrier-sales/internal/features/calls/adapters"
	callhandler "carrier-sales/internal/features/calls/handler"
	callservice "carrier-sales/internal/features/calls/service"
	carrieradapters "carrier-sales/internal/features/carriers/adapters"
	carrierhandler "carrier-sales/internal/features/carriers/handler"
	carrierports "carrier-sales/internal/features/carriers/ports"
	carrierservice "carrier-sales/internal/features/carriers/service"
	loadadapters "carrier-sales/internal/features/loads/adapters"
	loaddomain "carrier-sales/internal/features/loads/domain"
	loadhandler "carrier-sales/internal/features/loads/handler"
	loadservice "carrier-sales/internal/features/loads/service"
	locadapters "carrier-sales/internal/features/locations/adapters"
	locdomain "carrier-sales/internal/features/locations/domain"
	locports "carrier-sales/internal/features/locations/ports"
	locservice "carrier-sales/internal/features/locations/service"
	negadapters "carrier-sales/internal/features/negotiation/adapters"
	negdomain "carrier-sales/internal/features/negotiation/domain"
	neghandler "carrier-sales/internal/features/negotiation/handler"
	negservice "carrier-sales/internal/features/negotiation/service"
	setadapters "carrier-sales/internal/features/settings/adapters"
	sethandler "carrier-sales/internal/features/settings/handler"
	setservice "carrier-sales/internal/features/settings/service"

	"go.uber.org/zap"
)

const (
	settingsCacheTTL = time.Minute
	fmcsaTimeout     = 5 * time.Second
)

// @title Carrier Sales API
// @version 1.0
// @description Load matching, negotiation and carrier verification for inbound carrier calls.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("geocoder", cfg.Geocoder.Provider),
		zap.Bool("fmcsa_live", cfg.FMCSA.WebKey != ""),
	)

	ctx := context.Background()

	// Storage
	db, err := database.Open(cfg.Database)
	if err != nil {
		l.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Ping(ctx, db, 5*time.Second); err != nil {
		l.Fatal("Database unreachable", zap.Error(err))
	}
	if err := database.Migrate(ctx, db); err != nil {
		l.Fatal("Database migration failed", zap.Error(err))
	}
	l.Info("Database connection verified")

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, "carrier-sales:")
	if err != nil {
		l.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		l.Warn("Redis unreachable, lookups will not be cached", zap.Error(err))
	}

	// Settings
	settingsRepo := setadapters.NewCachedSettingsRepository(
		setadapters.NewPostgresSettingsRepository(db), redisCache, settingsCacheTTL)
	settingsSvc := setservice.NewSettingsService(settingsRepo)
	settingsHdl := sethandler.NewSettingsHandler(settingsSvc)

	// Locations
	gazetteer := locdomain.DefaultGazetteer()
	resolver := locservice.NewResolver(gazetteer, locadapters.WRatio, buildGeocoder(cfg, redisCache), cfg.Geocoder.Timeout())

	// Loads
	loadRepo := loadadapters.NewPostgresLoadRepository(db)
	loadSvc := loadservice.NewLoadService(loadRepo, resolver, gazetteer, settingsSvc,
		loaddomain.DefaultMatchPolicy(), cfg.Negotiation.DefaultSearchRadiusMiles)
	loadHdl := loadhandler.NewLoadHandler(loadSvc)

	// Negotiation
	negSvc := negservice.NewNegotiationService(loadRepo, negadapters.NewPostgresOfferRepository(db), settingsSvc,
		negdomain.DefaultPolicy(cfg.Negotiation.RateCeilingPercent), cfg.Negotiation.RateFloorPercent)
	negHdl := neghandler.NewNegotiationHandler(negSvc)

	// Bookings
	bookingSvc := bookingservice.NewBookingService(loadRepo, bookingadapters.NewPostgresBookingRepository(db), settingsSvc)
	bookingHdl := bookinghandler.NewBookingHandler(bookingSvc)

	// Calls
	callSvc := callservice.NewCallService(calladapters.NewPostgresCallRepository(db),
		calladapters.NewPostgresInteractionRepository(db))
	callHdl := callhandler.NewCallHandler(callSvc)

	// Carriers
	carrierSvc := carrierservice.NewCarrierService(buildCarrierRegistry(cfg, redisCache))
	carrierHdl := carrierhandler.NewCarrierHandler(carrierSvc)

	srv := server.New(cfg)

	// Register Routes
	api := srv.App.Group("/api")
	api.Post("/carriers/verify", carrierHdl.Verify)
	api.Post("/carriers/interactions", callHdl.LogInteraction)
	api.Get("/carriers/:mc/interactions", callHdl.History)
	api.Post("/loads/search", loadHdl.Search)
	api.Post("/loads/search/lane", loadHdl.SearchLane)
	api.Post("/loads/reschedule", loadHdl.Reschedule)
	api.Get("/loads/:id", loadHdl.GetLoad)
	api.Post("/offers/analyze", negHdl.Analyze)
	api.Post("/offers", negHdl.LogOffer)
	api.Post("/booked-loads", bookingHdl.Create)
	api.Get("/booked-loads", bookingHdl.List)
	api.Get("/booked-loads/:load_id", bookingHdl.GetByLoad)
	api.Post("/calls", callHdl.LogCall)
	api.Get("/settings/negotiation", settingsHdl.GetNegotiationSettings)
	api.Put("/settings/negotiation", settingsHdl.UpdateNegotiationSettings)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// buildGeocoder returns the configured geocoding fallback behind the Redis cache,
// or nil when geocoding is disabled. Google lookups fall back to Nominatim.
func buildGeocoder(cfg *config.AppConfig, c cache.Cache) locports.Geocoder {
	nominatim := locadapters.NewNominatimGeocoder(cfg.Geocoder.URL,
		httpclient.NewClientWithUserAgent(cfg.Geocoder.Timeout(), cfg.Geocoder.UserAgent))

	var provider locports.Geocoder
	switch cfg.Geocoder.Provider {
	case "none":
		logger.Get().Info("Geocoding fallback disabled")
		return nil
	case "google":
		g, err := locadapters.NewGoogleGeocoder(cfg.Geocoder.GoogleAPIKey, httpclient.NewClient(cfg.Geocoder.Timeout()))
		if err != nil {
			logger.Get().Fatal("Failed to create Google geocoder", zap.Error(err))
		}
		provider = locadapters.NewGeocoderChain(g, nominatim)
	default:
		provider = nominatim
	}

	return locadapters.NewCachedGeocoder(provider, c, cfg.Geocoder.CacheTTL())
}

// buildCarrierRegistry returns the live FMCSA registry with demo fallback when a
// web key is configured, or the demo registry alone otherwise. Either way results are cached.
func buildCarrierRegistry(cfg *config.AppConfig, c cache.Cache) carrierports.CarrierRegistry {
	if cfg.FMCSA.WebKey == "" {
		return carrieradapters.NewCachedRegistry(carrieradapters.NewDemoRegistry(), c, cfg.FMCSA.CacheTTL(), "demo")
	}

	live := carrieradapters.NewFMCSARegistry(cfg.FMCSA.BaseURL, cfg.FMCSA.WebKey,
		httpclient.NewClient(fmcsaTimeout), carrieradapters.DefaultFMCSARetry)
	return carrieradapters.NewCachedRegistry(
		carrieradapters.NewFallbackRegistry(live, carrieradapters.NewDemoRegistry()),
		c, cfg.FMCSA.CacheTTL(), "live")
}
