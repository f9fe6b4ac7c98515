package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	Environment       string
	FirebaseProject   string
	FirebaseApiKey    string
	DatabaseURL       string
	StorageBucket     string
	ClassifierURL     string
	ClassifierApiKey  string
	ClassifierTimeout int64
	ProfileDataDir    string
	BinPollSeconds    int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		FirebaseProject:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:    getEnv("FIREBASE_API_KEY", ""),
		DatabaseURL:       getEnv("FIREBASE_DATABASE_URL", ""),
		StorageBucket:     getEnv("STORAGE_BUCKET", ""),
		ClassifierURL:     getEnv("CLASSIFIER_URL", ""),
		ClassifierApiKey:  getEnv("CLASSIFIER_API_KEY", ""),
		ClassifierTimeout: getEnvAsInt64("CLASSIFIER_TIMEOUT_SECONDS", 30),
		ProfileDataDir:    getEnv("PROFILE_DATA_DIR", "./data"),
		BinPollSeconds:    getEnvAsInt64("BIN_POLL_SECONDS", 15),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
