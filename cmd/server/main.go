package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"tourbase/internal/auth"
	"tourbase/internal/cache"
	"tourbase/internal/config"
	"tourbase/internal/db"
	"tourbase/internal/handler"
	"tourbase/internal/model"
	"tourbase/internal/repository"
	"tourbase/internal/router"
	"tourbase/internal/service"
)

// @title Tourbase API
// @version 1.0
// @description Tour management API with per-user tours and JWT authentication.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Tour{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Tour{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("Warning: redis unreachable, running without cache: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	tourRepo := repository.NewTourRepository(gormDB)

	// Token issuer with the secret injected from configuration
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, service.NewSignupValidator(), jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	tourService := service.NewTourService(tourRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler()
	tourHandler := handler.NewTourHandler(tourService)

	e := echo.New()
	router.Register(e, cfg, userService, authHandler, userHandler, tourHandler)

	log.Printf("listening on :%s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
