package main

import (
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/config"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/routes"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/utils"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	db := config.InitDB(cfg)

	r := routes.SetupRouter(db, cfg, logger)
	logger.Info("listening", zap.String("port", cfg.Port), zap.Bool("cors", cfg.EnableCORS))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
