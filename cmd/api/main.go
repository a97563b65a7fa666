package main

import (
	"context"
	"log"

	"crewhub/internal/config"
	"crewhub/internal/database"
	"crewhub/internal/middleware"
	"crewhub/internal/modules/admin"
	"crewhub/internal/modules/appointment"
	"crewhub/internal/modules/auth"
	"crewhub/internal/modules/report"
	"crewhub/internal/modules/review"
	"crewhub/internal/modules/worker"
	jwtsvc "crewhub/internal/pkg/jwt"
	"crewhub/internal/repository"
	"crewhub/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}
	if err := seed.EnsureAdmin(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	reportRepo := repository.NewReportRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, sessionRepo, j, cfg.SessionTokenPepper, cfg.SessionTTL, cfg.MaxSessionsPerUser)
	authHandler := auth.NewHandler(authService, auth.CookieSettings{
		Name:     cfg.SessionCookieName,
		Path:     cfg.CookiePath,
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
		MaxAge:   int(cfg.SessionTTL.Seconds()),
	})

	workerService := worker.NewService(userRepo, reviewRepo)
	workerHandler := worker.NewHandler(workerService)

	appointmentService := appointment.NewService(appointmentRepo, userRepo)
	appointmentHandler := appointment.NewHandler(appointmentService)

	reviewService := review.NewService(reviewRepo, appointmentRepo)
	reviewHandler := review.NewHandler(reviewService)

	reportService := report.NewService(reportRepo, userRepo)
	reportHandler := report.NewHandler(reportService)

	adminService := admin.NewService(userRepo, appointmentRepo, reportRepo)
	adminHandler := admin.NewHandler(adminService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)
		workerHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Authenticate(authService, cfg.SessionCookieName, j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			workerHandler.RegisterProtectedRoutes(protected)
			appointmentHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			reportHandler.RegisterProtectedRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
				reportHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
