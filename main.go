package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aircnc-booking/config"
	"aircnc-booking/database"
	"aircnc-booking/logger"
	"aircnc-booking/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
	})

	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
		fmt.Println("Error loading .env file", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", err)
		return
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db, cfg)

	// Close the pool on shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("Shutting down...")
		_ = app.Shutdown()
		_ = database.Close(db)
	}()

	logger.Success("AirCNC is running on " + cfg.Host + ":" + cfg.Port)
	if err := app.Listen(cfg.Host + ":" + cfg.Port); err != nil {
		logger.Error("Server stopped", err)
	}
}
