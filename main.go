package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	identity "auction-house/internal/identityService"
	"auction-house/internal/network"
	"auction-house/internal/notify"
	"auction-house/internal/repository"
	"auction-house/internal/scheduler"
	"auction-house/internal/seed"
	"auction-house/internal/server"
	"auction-house/internal/session"
	"auction-house/internal/storage"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		utils.Fatal("Failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.Log.Level)
	utils.Info("Configuration loaded", map[string]any{"config": cfg.GetConfigString()})
	if cfg.UsesDefaultSecret() {
		utils.Warn("Session tokens are signed with the default secret; set SESSION_SECRET", nil)
	}

	repo := repository.NewMemoryRepo()
	if cfg.Seed.Enabled {
		n := seed.Load(repo, time.Now().UTC())
		utils.Info("Seeded demo auctions", map[string]any{"count": n})
	}

	link := network.NewSimulatedLink(0,
		network.WithDelay(network.OpCreate, cfg.Network.CreateLatency),
		network.WithDelay(network.OpPlaceBid, cfg.Network.BidLatency),
		network.WithDelay(network.OpLogin, cfg.Network.LoginLatency),
		network.WithDelay(network.OpRegister, cfg.Network.RegisterLatency),
	)

	auctionSvc := auction.NewAuctionService(repo,
		auction.WithLink(link),
		auction.WithNotifier(notify.NewLogNotifier("auctions")),
	)

	store, err := storage.NewFileStore(cfg.Storage.Dir, cfg.Storage.File)
	if err != nil {
		utils.Fatal("Failed to open identity store", map[string]any{"error": err.Error()})
	}
	identitySvc := identity.NewIdentityService(store,
		identity.WithLink(link),
		identity.WithNotifier(notify.NewLogNotifier("identity")),
	)
	identitySvc.CheckAuth()

	expiry := scheduler.NewExpiryScheduler(auctionSvc, cfg.Scheduler.Spec)
	if err := expiry.Start(); err != nil {
		utils.Fatal("Failed to start scheduler", map[string]any{"error": err.Error()})
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.SetupRouter(server.Services{
		Auctions: auctionSvc,
		Identity: identitySvc,
		Sessions: session.NewManager(cfg.Session.Secret, cfg.Session.TTL),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("Starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("Shutting down auction server", nil)
	expiry.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}
	utils.Info("Server exited", nil)
}

// loadConfig reads CONFIG_FILE when set, otherwise the default locations
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
