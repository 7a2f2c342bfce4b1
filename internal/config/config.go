package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API    APIConfig
	Server ServerConfig
	View   ViewConfig
}

type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type ViewConfig struct {
	PedidosPageSize    int
	EstoqueBaixoLimite int
	EstoquePageSize    int
	EstoqueSortPadrao  string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			Token:   getEnv("API_TOKEN", ""),
			Timeout: getEnvDuration("API_TIMEOUT", 15*time.Second),
		},
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8090"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		View: ViewConfig{
			PedidosPageSize:    getEnvInt("PEDIDOS_PAGE_SIZE", 8),
			EstoqueBaixoLimite: getEnvInt("ESTOQUE_BAIXO_LIMITE", 10),
			EstoquePageSize:    getEnvInt("ESTOQUE_PAGE_SIZE", 10),
			EstoqueSortPadrao:  getEnv("ESTOQUE_SORT_PADRAO", "id,DESC"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		fmt.Printf("Warning: invalid duration for %s, using default\n", key)
	}
	return defaultValue
}
