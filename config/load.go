package config

import "os"

func Load() App {
	return App{
		Port:        getenv("APP_PORT", "9090"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Env:         getenv("APP_ENV", "dev"),
	}
}

func LoadGateway() Gateway {
	return Gateway{
		Port:      getenv("APP_PORT", "8080"),
		ServerURL: getenv("SHAREIT_SERVER_URL", "http://localhost:9090"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
