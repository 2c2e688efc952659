package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Booking BookingConfig
	Gemini  GeminiConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	Path string
}

type BookingConfig struct {
	ConvenienceFee int64
	PaymentDelay   time.Duration
	PaymentTimeout time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinebook")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORE_PATH", "cinebook.db")
	viper.SetDefault("CONVENIENCE_FEE", 25)
	viper.SetDefault("PAYMENT_DELAY_MS", 2000)
	viper.SetDefault("PAYMENT_TIMEOUT_MS", 5000)
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_TIMEOUT_MS", 8000)

	// Missing .env is fine, env vars and defaults still apply
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		Booking: BookingConfig{
			ConvenienceFee: viper.GetInt64("CONVENIENCE_FEE"),
			PaymentDelay:   time.Duration(viper.GetInt("PAYMENT_DELAY_MS")) * time.Millisecond,
			PaymentTimeout: time.Duration(viper.GetInt("PAYMENT_TIMEOUT_MS")) * time.Millisecond,
		},
		Gemini: GeminiConfig{
			APIKey:  viper.GetString("GEMINI_API_KEY"),
			Model:   viper.GetString("GEMINI_MODEL"),
			BaseURL: viper.GetString("GEMINI_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("GEMINI_TIMEOUT_MS")) * time.Millisecond,
		},
	}

	return config, nil
}
