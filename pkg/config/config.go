package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port        string
	UploadMaxMB int64
}

// APIConfig описывает REST-бэкенд, к которому ходят страницы дашборда.
type APIConfig struct {
	Host               string
	Timeout            time.Duration
	EmployeeGetURL     string
	EmployeeCreateURL  string
	InventoryGetURL    string
	InventoryCreateURL string
}

type RedisConfig struct {
	Address  string
	Password string
	FlashTTL time.Duration
}

type LogConfig struct {
	Level string
	File  string
}

type InventoryConfig struct {
	HardwareTypes []string
}

type Config struct {
	Server    ServerConfig
	API       APIConfig
	Redis     RedisConfig
	Log       LogConfig
	Inventory InventoryConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			UploadMaxMB: getEnvInt("UPLOAD_MAX_MB", 20),
		},
		API: APIConfig{
			Host:               strings.TrimRight(getEnv("HOST_API_KEY", "http://localhost:5000"), "/"),
			Timeout:            getEnvDuration("API_TIMEOUT", 20*time.Second),
			EmployeeGetURL:     getEnv("EMPLOYEE_GET_URL", "/Employee/get"),
			EmployeeCreateURL:  getEnv("EMPLOYEE_CREATE_URL", "/Employee/create"),
			InventoryGetURL:    getEnv("INVENTORY_GET_URL", "/Inventory/get"),
			InventoryCreateURL: getEnv("INVENTORY_CREATE_URL", "/Inventory/create"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			FlashTTL: getEnvDuration("FLASH_TTL", 5*time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
			File:  getEnv("LOG_FILE", "./logs/app.log"),
		},
		Inventory: InventoryConfig{
			HardwareTypes: splitList(getEnv("HARDWARE_TYPES", "Laptop")),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int64) int64 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
