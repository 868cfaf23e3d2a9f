package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	AdminUsername       string
	AdminPassword       string
	HolidayJurisdiction string
}

var instance *ServerConfig
var once sync.Once

func GetServerConfig() *ServerConfig {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Info("no .env file found, reading environment directly")
		}

		instance = &ServerConfig{
			Port:                getEnv("PORT", "8080"),
			DatabaseURL:         getEnv("DATABASE_URL", "experimento.db"),
			JWTSecret:           getEnv("JWT_SECRET", ""),
			AdminUsername:       getEnv("ADMIN_USERNAME", ""),
			AdminPassword:       getEnv("ADMIN_PASSWORD", ""),
			HolidayJurisdiction: getEnv("HOLIDAY_JURISDICTION", "AR"),
		}

		if instance.JWTSecret == "" {
			logrus.Fatal("could not get JWT secret")
		}
		if instance.AdminUsername != "" && instance.AdminPassword == "" {
			logrus.Fatal("ADMIN_USERNAME is set but ADMIN_PASSWORD is empty")
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
