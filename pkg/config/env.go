// Env loader
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv           string
	Port             string
	DBHost           string
	DBPort           string
	DBName           string
	DBUser           string
	DBPassword       string
	DBSchema         string
	GroqAPIKey       string
	GroqBaseURL      string
	GroqModel        string
	FirebaseCredJSON string
	FirebaseCredFile string
	CronEnabled      bool
	LogLevel         string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		DBHost:           getEnv("VERSE_DB_HOST", "localhost"),
		DBPort:           getEnv("VERSE_DB_PORT", "5432"),
		DBName:           getEnv("VERSE_DB_DATABASE", "palabra_viva"),
		DBUser:           getEnv("VERSE_DB_USERNAME", "postgres"),
		DBPassword:       getEnv("VERSE_DB_PASSWORD", ""),
		DBSchema:         getEnv("VERSE_DB_SCHEMA", "public"),
		GroqAPIKey:       getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:        getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		FirebaseCredJSON: getEnv("FIREBASE_CONFIG_JSON", ""),
		FirebaseCredFile: getEnv("FIREBASE_CONFIG_FILE", "serviceAccountKey.json"),
		CronEnabled:      getEnvBool("CRON_ENABLED", false),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
