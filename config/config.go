package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	StrictAuth  bool
}

func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] no .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "America/Chicago"),
		DBPath:      get("DB_PATH", "plot.db"),
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		StrictAuth:  get("STRICT_AUTH", "false") == "true",
	}
	log.Printf("[cfg] port=%s tz=%s db=%s llm_model=%s strict_auth=%v",
		cfg.Port, cfg.Timezone, cfg.DBPath, cfg.LLMModel, cfg.StrictAuth)
	return cfg
}
