package main

import (
	"log/slog"
	"os"

	"backend/config"
	"backend/logger"
	"backend/routes"
	"backend/utils"
)

func main() {
	logger.Init()
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	slog.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
