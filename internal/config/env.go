package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	MapsAPIKey string
	RedisAddr  string

	// TolerancePercent membatasi selisih harga/jarak client vs server (default 10%).
	TolerancePercent float64

	// DefaultDepartureOffsetDays dipakai saat order tidak membawa tanggal sama sekali.
	DefaultDepartureOffsetDays int

	JWTSecret string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	return Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: envOrDefault("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: envOrDefault("DB_HOST", "127.0.0.1:3306"),
		DBName: envOrDefault("DB_NAME", "transtour_app"),

		MapsAPIKey: strings.TrimSpace(os.Getenv("MAPS_API_KEY")),
		RedisAddr:  strings.TrimSpace(os.Getenv("REDIS_ADDR")),

		TolerancePercent:           envOrDefaultFloat("PRICE_TOLERANCE_PERCENT", 10),
		DefaultDepartureOffsetDays: envOrDefaultInt("DEFAULT_DEPARTURE_OFFSET_DAYS", 5),

		JWTSecret: envOrDefault("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
