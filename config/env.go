package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverMemory   = "memory"
)

// GetDBDriver selects the record store, postgres unless DB_DRIVER=memory.
func GetDBDriver() string {
	if strings.EqualFold(os.Getenv("DB_DRIVER"), DBDriverMemory) {
		return DBDriverMemory
	}
	return DBDriverPostgres
}

func GetDBMaxOpenConns() int {
	v, err := strconv.Atoi(os.Getenv("DB_MAX_OPEN_CONNS"))
	if err != nil || v <= 0 {
		return 20
	}
	return v
}

// GetRequestTimeout bounds each store call made on behalf of a request.
func GetRequestTimeout() time.Duration {
	v, err := time.ParseDuration(os.Getenv("REQUEST_TIMEOUT"))
	if err != nil || v <= 0 {
		return 10 * time.Second
	}
	return v
}

// GetJWTSecret returns the HS256 key for bearer tokens. Empty disables auth.
func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func GetCORSAllowOrigins() string {
	v := os.Getenv("CORS_ALLOW_ORIGINS")
	if v == "" {
		return "*"
	}
	return v
}
