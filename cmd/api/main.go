package main

import (
	_ "survey_tracker/docs"
	"survey_tracker/internal/adapter/http/routes"
	"survey_tracker/internal/config"
	"survey_tracker/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Survey Tracker API
// @version         1.0
// @description     Quotes, instructed projects, milestone calendar and organization reviews for a land-surveying practice.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting survey tracker",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("calendar_timezone", cfg.CalendarTimezone),
	)

	if err := routes.Run(cfg); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
