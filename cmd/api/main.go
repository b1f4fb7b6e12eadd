package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campus-tools/timetable-api/api/swagger"
	"github.com/campus-tools/timetable-api/internal/handler"
	"github.com/campus-tools/timetable-api/internal/middleware"
	"github.com/campus-tools/timetable-api/internal/repository"
	"github.com/campus-tools/timetable-api/internal/service"
	"github.com/campus-tools/timetable-api/internal/timetable"
	"github.com/campus-tools/timetable-api/pkg/cache"
	"github.com/campus-tools/timetable-api/pkg/config"
	"github.com/campus-tools/timetable-api/pkg/database"
	"github.com/campus-tools/timetable-api/pkg/logger"
	corsmiddleware "github.com/campus-tools/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campus-tools/timetable-api/pkg/middleware/requestid"
)

// @title Timetable API
// @version 1.0.0
// @description Class schedule storage, weekly projection and upcoming-class resolution
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The engine works without caching, each request just reprojects.
		logr.Sugar().Warnw("redis unavailable, projection cache disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	validate := validator.New()

	courseRepo := repository.NewCourseRepository(db)
	modeRepo := repository.NewModeRepository(db)
	userRepo := repository.NewUserRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	convention := timetable.ConventionByName(cfg.Schedule.WeekConvention)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	courseSvc := service.NewCourseService(courseRepo, cacheRepo, validate, logr)
	timetableSvc := service.NewTimetableService(courseRepo, modeRepo, cacheRepo, metricsSvc, convention, cfg.Schedule.CacheTTL, logr)
	exportSvc := service.NewExportService(timetableSvc, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc, exportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	authRequired := middleware.JWT(authSvc)

	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authRequired, authHandler.Me)

	api.GET("/courses", courseHandler.List)
	api.POST("/courses", authRequired, courseHandler.Create)
	api.DELETE("/courses/:position", authRequired, courseHandler.Delete)

	api.GET("/timetable/week", timetableHandler.Week)
	api.GET("/timetable/upcoming", timetableHandler.Upcoming)
	api.GET("/timetable/export", timetableHandler.Export)

	api.GET("/settings/ramadan-mode", timetableHandler.Mode)
	api.PUT("/settings/ramadan-mode", authRequired, timetableHandler.UpdateMode)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "week_convention", convention.Name)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
