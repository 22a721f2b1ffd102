package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/AliHaider728/royal-palm-map-clone/internal/app"
	"github.com/AliHaider728/royal-palm-map-clone/internal/config"
	"github.com/AliHaider728/royal-palm-map-clone/internal/controllers"
	"github.com/AliHaider728/royal-palm-map-clone/internal/inventory"
	"github.com/AliHaider728/royal-palm-map-clone/internal/mapview"
	"github.com/AliHaider728/royal-palm-map-clone/internal/middleware"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/services"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

const (
	viewRollupTimeout = 2 * time.Minute
	tokenPruneSpec    = "@every 1h"
	tokenPruneTimeout = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serve() {
	cfg := config.LoadConfig()
	defer cfg.Close()

	ctx := context.Background()
	application, err := app.NewApp(ctx, cfg.DBUrl)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize plotmap-service")
	}
	defer application.Close()

	if err := app.Migrate(ctx, application.DB); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to apply schema")
	}

	// Repositories
	repos := app.NewRepos(application.DB)
	inquiryRepo := repositories.NewInquiryRepository(application.DB)
	viewRepo := repositories.NewPropertyViewRepository(application.DB)

	if cfg.LDFlag_SeedDbWithTestData {
		if err := app.SeedAllTestData(ctx, repos); err != nil {
			utils.Logger.Fatal("Failed to seed test data:", err)
		}
	}

	// Integrations
	presigner, err := services.NewS3Presigner(ctx, cfg.S3Bucket, cfg.AWSRegion)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize S3 presigner")
	}

	// Services
	jwtService := services.NewJWTService(cfg.RSAPrivateKey, cfg.TokenExpiry, repos.RevokedTokens)
	authService := services.NewAuthService(repos.Users, repos.Profiles, repos.Roles, jwtService)
	propertyService := services.NewPropertyService(repos.Properties, repos.Profiles, services.NewGeocoder(cfg.GMapsAPIKey))
	analyticsService := services.NewAnalyticsService(viewRepo, propertyService)
	inquiryService := services.NewInquiryService(inquiryRepo, propertyService, services.NewDealerNotifier(cfg), cfg.LDFlag_NotifyDealerOnInquiry)
	adminService := services.NewAdminService(repos.Profiles, repos.Roles, repos.Properties, inquiryRepo, viewRepo)
	packageService := services.NewPackageService(repos.Packages)
	mediaService := services.NewMediaService(presigner, propertyService)
	mapService := services.NewMapService(
		records.NewStaticSource(inventory.Plots()),
		records.NewPropertySource(propertyService),
		inventory.Landmarks(),
		mapview.DefaultConfig(),
		analyticsService,
	)

	// Controllers
	router := newRouter(handlers{
		health:   controllers.NewHealthController(application.DB),
		maps:     controllers.NewMapController(mapService),
		auth:     controllers.NewAuthController(authService),
		property: controllers.NewPropertyController(propertyService, mediaService, analyticsService),
		dealer:   controllers.NewDealerController(propertyService, inquiryService, analyticsService),
		inquiry:  controllers.NewInquiryController(inquiryService),
		packages: controllers.NewPackageController(packageService),
		admin:    controllers.NewAdminController(adminService),
	},
		middleware.AuthMiddleware(cfg.RSAPublicKey, jwtService),
		middleware.OptionalAuthMiddleware(cfg.RSAPublicKey, jwtService),
	)

	// Cron job setup
	c := cron.New(cron.WithLocation(time.UTC))

	_, err = c.AddFunc(cfg.ViewRollupSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), viewRollupTimeout)
		defer cancel()
		utils.Logger.Info("Starting view rollup cron job...")
		if _, err := analyticsService.RollupViews(ctx); err != nil {
			utils.Logger.WithError(err).Error("Failed to roll up property views")
		}
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule view rollup cron")
	}

	_, err = c.AddFunc(tokenPruneSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), tokenPruneTimeout)
		defer cancel()
		if _, err := jwtService.PruneRevoked(ctx); err != nil {
			utils.Logger.WithError(err).Error("Failed to prune revoked tokens")
		}
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule token prune cron")
	}

	c.Start()
	defer c.Stop()
	utils.Logger.Infof("Scheduled view rollup cron: '%s'", cfg.ViewRollupSchedule)

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, utils.CORSLowSecurityAllowedOriginLocalhost)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           co.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		utils.Logger.Info("Shutting down plotmap-service...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			utils.Logger.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		utils.Logger.Fatal("plotmap-service failed to start:", err)
	}
}
