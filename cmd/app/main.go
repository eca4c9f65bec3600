package main

import (
	"praxis/config"
	"praxis/di"
	"praxis/shared/logger"

	_ "praxis/docs"
)

// @title Praxis API
// @version 1.0
// @description Booking and back-office API for a psychology practice.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
