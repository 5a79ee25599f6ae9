package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Port string     `mapstructure:"PORT"`
	CORS CORSConfig `mapstructure:"CORS"`
}

// CORSConfig holds configuration for CORS.
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"ALLOWED_ORIGINS"`
	AllowedMethods   []string `mapstructure:"ALLOWED_METHODS"`
	AllowedHeaders   []string `mapstructure:"ALLOWED_HEADERS"`
	AllowCredentials bool     `mapstructure:"ALLOW_CREDENTIALS"`
}

// AWSConfig holds the AWS region and the bucket profile pictures live in.
type AWSConfig struct {
	Region   string `mapstructure:"REGION"`
	S3Bucket string `mapstructure:"S3_BUCKET"`
	// Presign lifetimes in minutes.
	ReadURLTTLMinutes   int `mapstructure:"READ_URL_TTL_MINUTES"`
	UploadURLTTLMinutes int `mapstructure:"UPLOAD_URL_TTL_MINUTES"`
}

// FeedConfig holds feed-loading tunables.
type FeedConfig struct {
	BatchSize int32 `mapstructure:"BATCH_SIZE"`
}

// GestureConfig holds gesture-recognition tunables shared with clients.
type GestureConfig struct {
	DoubleTapWindowMS int `mapstructure:"DOUBLE_TAP_WINDOW_MS"`
}

// Config holds all configuration for the application. Values are read by
// viper from config.yaml or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"SERVER"`
	AWS     AWSConfig     `mapstructure:"AWS"`
	Feed    FeedConfig    `mapstructure:"FEED"`
	Gesture GestureConfig `mapstructure:"GESTURE"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.CORS.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.CORS.ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("SERVER.CORS.ALLOWED_HEADERS", []string{"Content-Type", "Authorization"})
	v.SetDefault("SERVER.CORS.ALLOW_CREDENTIALS", true)

	v.SetDefault("AWS.REGION", "us-east-1")
	v.SetDefault("AWS.S3_BUCKET", "spark-profile-pictures")
	v.SetDefault("AWS.READ_URL_TTL_MINUTES", 15)
	v.SetDefault("AWS.UPLOAD_URL_TTL_MINUTES", 5)

	v.SetDefault("FEED.BATCH_SIZE", 50)
	v.SetDefault("GESTURE.DOUBLE_TAP_WINDOW_MS", 300)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// No config file is fine, the defaults plus env cover everything.
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
