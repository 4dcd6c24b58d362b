package config

import (
	"os"
	"strconv"
)

type Config struct {
	SecretKey     string
	Algorithm     string
	ExpireMinutes int
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	GinMode       string
	Port          string
}

func Load() *Config {
	return &Config{
		SecretKey:     getEnv("SECRET_KEY", "dev_security_key"),
		Algorithm:     getEnv("ALGORITHM", "HS256"),
		ExpireMinutes: getEnvInt("EXPIRE_TIME_MINUTES", 15),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "trackify"),
		DBPassword:    getEnv("DB_PASSWORD", "trackify"),
		DBName:        getEnv("DB_NAME", "trackify.db"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
