package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "supermercado-backend/docs"
	"supermercado-backend/internal/common/cache"
	"supermercado-backend/internal/common/config"
	"supermercado-backend/internal/common/logger"
	"supermercado-backend/internal/common/middleware"
	authhttp "supermercado-backend/internal/features/auth/delivery/http"
	authservice "supermercado-backend/internal/features/auth/service"
	employeehttp "supermercado-backend/internal/features/employee/delivery/http"
	employeerepo "supermercado-backend/internal/features/employee/repository"
	employeememory "supermercado-backend/internal/features/employee/repository/memory"
	employeemysql "supermercado-backend/internal/features/employee/repository/mysql"
	employeeservice "supermercado-backend/internal/features/employee/service"
	userhttp "supermercado-backend/internal/features/user/delivery/http"
	userrepo "supermercado-backend/internal/features/user/repository"
	usermemory "supermercado-backend/internal/features/user/repository/memory"
	usermysql "supermercado-backend/internal/features/user/repository/mysql"
	userservice "supermercado-backend/internal/features/user/service"
	"supermercado-backend/internal/platform/mysql"
	redisplatform "supermercado-backend/internal/platform/redis"
)

// @title           Supermercado Staff API
// @version         1.0
// @description     User and employee management API for the supermercado system.

// @host      localhost:8080
// @BasePath  /api

// @tag.name users
// @tag.description User account management

// @tag.name empleados
// @tag.description Employee management - CRUD, role and department queries

// @tag.name auth
// @tag.description Demo login gate (email + name match)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init("supermercado-backend", cfg.Debug)
	logger.Info().
		Str("storage", cfg.Storage.Driver).
		Bool("debug", cfg.Debug).
		Msg("starting supermercado backend")

	var (
		users     userrepo.Repository
		employees employeerepo.Repository
		mysqlDB   *mysql.Client
	)

	switch cfg.Storage.Driver {
	case config.StorageMySQL:
		mysqlDB, err = mysql.Open(ctx, cfg.MySQLDSN())
		if err != nil {
			logger.Fatal().Err(err).Msg("mysql connection failed")
		}
		defer mysqlDB.Close()

		users = usermysql.New(mysqlDB.DB())
		employees = employeemysql.New(mysqlDB.DB())
		logger.Info().Msg("mysql repositories initialized")
	default:
		users = usermemory.New()
		employees = employeememory.New()
		logger.Info().Msg("in-memory repositories initialized with sample data")
	}

	var (
		listingCache cache.Cache
		redisClient  *redisplatform.Client
	)

	if addr := cfg.RedisAddr(); addr != "" {
		redisClient, err = redisplatform.Open(ctx, addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connection failed")
		}
		defer redisClient.Close()

		listingCache = cache.NewRedis(redisClient, cfg.Redis.CacheTTL)
		logger.Info().Str("addr", addr).Msg("redis cache initialized")
	} else {
		listingCache = cache.NewMemory(cfg.Redis.CacheTTL)
	}

	userSvc := userservice.New(users)
	employeeSvc := employeeservice.New(employees, listingCache)
	authSvc := authservice.New(users)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newRouter(userSvc, employeeSvc, authSvc, mysqlDB, redisClient)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}

	logger.Info().Msg("server exited")
}

func newRouter(
	userSvc userservice.Service,
	employeeSvc employeeservice.Service,
	authSvc authservice.Service,
	mysqlDB *mysql.Client,
	redisClient *redisplatform.Client,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	// CORS is deliberately allow-all: the API serves browser frontends on
	// arbitrary origins and carries no credentials.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	// Preflight answers with a bare 200 rather than gin-contrib's default 204.
	corsConfig.OptionsResponseStatusCode = http.StatusOK
	router.Use(cors.New(corsConfig))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":         "route not found",
			"documentation": "/swagger/index.html",
		})
	})

	api := router.Group("/api")
	userhttp.NewUserHandler(userSvc).RegisterRoutes(api)
	employeehttp.NewEmployeeHandler(employeeSvc).RegisterRoutes(api)
	authhttp.NewAuthHandler(authSvc).RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "supermercado-backend",
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		probeCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if mysqlDB != nil {
			if err := mysqlDB.HealthCheck(probeCtx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready", "error": "mysql unavailable"})
				return
			}
		}
		if redisClient != nil {
			if err := redisClient.HealthCheck(probeCtx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready", "error": "redis unavailable"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready", "timestamp": time.Now().UTC()})
	})

	return router
}
