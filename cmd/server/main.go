package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpContext "github.com/dtroode/storefront/internal/api/http/context"
	"github.com/dtroode/storefront/internal/api/http/router"
	httpServer "github.com/dtroode/storefront/internal/api/http/server"
	"github.com/dtroode/storefront/internal/config"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/password"
	"github.com/dtroode/storefront/internal/repository/postgres"
	"github.com/dtroode/storefront/internal/server"
	"github.com/dtroode/storefront/internal/service"
	storage "github.com/dtroode/storefront/internal/storage/minio"
	"github.com/dtroode/storefront/internal/token"
	"github.com/dtroode/storefront/web"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	brandRepo := postgres.NewBrandRepository(db)
	modelRepo := postgres.NewDeviceModelRepository(db)
	productRepo := postgres.NewProductRepository(db)

	hasher := password.NewBcrypt(password.DefaultCost)
	sessions := service.NewSession(token.NewJWT(cfg.Session.Secret), cfg.Session.TTL)

	services := router.Services{
		Auth:        service.NewAuth(userRepo, hasher, logger),
		Session:     sessions,
		Brand:       service.NewBrand(brandRepo, modelRepo, logger),
		DeviceModel: service.NewDeviceModel(modelRepo, brandRepo, productRepo, logger),
		Product:     service.NewProduct(productRepo, brandRepo, modelRepo, logger),
		User:        service.NewUser(userRepo, hasher, logger),
		Profile:     service.NewProfile(userRepo, hasher, logger),
		Catalog:     service.NewCatalog(brandRepo, modelRepo, productRepo, userRepo),
	}

	if cfg.Storage.Enabled() {
		storageClient, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		services.Media = service.NewMedia(storageClient, productRepo, brandRepo, logger)
	} else {
		logger.Info("object storage is not configured, media uploads are disabled")
	}

	gin.SetMode(gin.ReleaseMode)

	handler, err := router.New(services, httpContext.NewManager(), web.FS, router.Options{
		CSRFKey:        []byte(cfg.Session.CSRFKey),
		FlashKey:       []byte(cfg.Session.Secret),
		SecureCookies:  cfg.Session.CookieSecure,
		PlaintextHTTP:  !cfg.HTTP.EnableHTTPS,
		TrustedOrigins: cfg.HTTP.TrustedOrigins,
		MaxUploadSize:  service.MaxUploadSize,
	}, logger).Register()
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}

	httpSrv := httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpSrv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpSrv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
