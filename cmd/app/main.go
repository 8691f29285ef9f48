package main

import (
	"nirvanica/config"
	"nirvanica/di"
	"nirvanica/shared/logger"
)

// @title Nirvanica Homestay API
// @version 1.0
// @description Reservation and booking ledger API for the Nirvanica Homestay.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
