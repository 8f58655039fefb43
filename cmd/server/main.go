package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"portfolio-ai-backend/internal/api"
	"portfolio-ai-backend/internal/config"
	"portfolio-ai-backend/internal/gemini"
)

func initLogger() {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	log.SetLevel(log.InfoLevel)
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	initLogger()

	conf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if conf.Gemini.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; generation endpoints will answer with a configuration error")
	}

	client := gemini.NewClient(conf.Gemini.APIKey, conf.Gemini.BaseURL)
	handler := api.NewHandler(client)
	router := api.NewRouter(handler, "templates/*.html")

	addr := ":" + conf.App.Port
	log.WithField("addr", addr).Info("Portfolio AI backend starting")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
