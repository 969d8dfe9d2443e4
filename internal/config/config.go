package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
	YouTubeAPIKey    string
	UserServiceURL   string
	JWTSecret        string
	ServiceName      string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "career_quiz"),
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:        getEnvOrDefault("LLM_API_KEY", ""),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "qwen3:1.7b"),
		YouTubeAPIKey:    getEnvOrDefault("YOUTUBE_API_KEY", ""),
		UserServiceURL:   getEnvOrDefault("USER_SERVICE_URL", ""),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "your-jwt-secret-key"),
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "career-quiz-service"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
