package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey string `mapstructure:"OPENAI_API_KEY"`  // API key for OpenAI (required)
	ModelID   string `mapstructure:"OPENAI_MODEL_ID"` // e.g., "gpt-4o"

	// Optional local export of generated projects
	ExportDir string `mapstructure:"EXPORT_DIR"` // Base dir for exported file trees; empty disables export

	// CORS
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // Comma-separated frontend origins allowed to call the API
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv() // Read environment variables that match keys

	// Viper only sees env vars it knows about; bind each key explicitly so
	// AutomaticEnv works without a config file present.
	for _, key := range []string{"SERVER_ADDRESS", "OPENAI_API_KEY", "OPENAI_MODEL_ID", "EXPORT_DIR", "CORS_ALLOWED_ORIGINS"} {
		_ = viper.BindEnv(key)
	}

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_MODEL_ID", "gpt-4o")

	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, continue: env vars may carry everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// The AI credential is the one hard requirement: the generation
	// endpoints cannot work without it.
	if config.OpenAIKey == "" {
		return Config{}, errors.New("OPENAI_API_KEY is required")
	}

	return
}
