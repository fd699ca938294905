package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/shelfwatch/inventory-screen/internal/auth"
	"github.com/shelfwatch/inventory-screen/internal/catalog"
	"github.com/shelfwatch/inventory-screen/internal/config"
	api "github.com/shelfwatch/inventory-screen/internal/http"
	"github.com/shelfwatch/inventory-screen/internal/http/ban"
	"github.com/shelfwatch/inventory-screen/internal/http/handlers"
	rl "github.com/shelfwatch/inventory-screen/internal/http/rate_limiter"
	"github.com/shelfwatch/inventory-screen/internal/session"
)

// @title Inventory Screen API
// @version 1.0
// @description Session-holding backend for the inventory management screen.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("❌ Could not load configuration: ", err)
	}

	var tracker *ban.Tracker
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("❌ Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		tracker = ban.NewTracker(rdb)
	} else {
		log.Println("login abuse tracking disabled (no redis address configured)")
	}

	auth.SetSecret(cfg.Auth.JWTSecret)
	auth.SetTokenTTL(cfg.Auth.TokenTTL)

	client := catalog.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	handlers.SetScreenStore(session.NewStore(client, cfg.Screen.DefaultPageSize))
	handlers.SetOperators(cfg.Auth.Operators)
	handlers.SetBanTracker(tracker)

	limiter := rl.NewRegistry(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop()
	api.SetRateLimiter(limiter)

	r := api.NewRouter()
	log.Println("✅ Server running on", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
