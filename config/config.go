package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

const Version string = "0.0.1"

type Config struct {
	App struct {
		Name string
		Port string
	}
	Database struct {
		Dsn                  string
		MaxIdleConns         int
		MaxOpenConns         int
		ConnMaxLifetimeHours int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	Translation_Api struct {
		Provider string
		BaseURL  string `mapstructure:"base_url"`
		ApiKey   string `mapstructure:"api_key"`
		Model    string
	}
	Pipeline struct {
		MaxKeys         int `mapstructure:"max_keys"`
		MaxTranslateKey int `mapstructure:"max_translate_keys"`
		BatchSize       int `mapstructure:"batch_size"`
		BatchDelayMs    int `mapstructure:"batch_delay_ms"`
		TimeoutSeconds  int `mapstructure:"timeout_seconds"`
		MaxTextLength   int `mapstructure:"max_text_length"`
	}
}

var AppConfig *Config

// InitConfig reads config/config.yml into AppConfig and brings up the
// database and redis connections.
func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	// Pipeline policy defaults; config.yml only needs to override them.
	viper.SetDefault("pipeline.max_keys", 50)
	viper.SetDefault("pipeline.max_translate_keys", 20)
	viper.SetDefault("pipeline.batch_size", 5)
	viper.SetDefault("pipeline.batch_delay_ms", 1000)
	viper.SetDefault("pipeline.timeout_seconds", 25)
	viper.SetDefault("pipeline.max_text_length", 1000)

	// The API key may come from the environment instead of the file.
	viper.BindEnv("translation_api.api_key", "TRANSLATION_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Error unmarshalling config file: %v", err)
	}
	initDB()
	initRedis()
	initUserCache(userCacheSize)
	runMigrations()
	printURL()
}

func GetPort() string {
	if AppConfig == nil || AppConfig.App.Port == "" {
		log.Println("Warning: Port is not set in config file, using default port 8080")
		return ":8080"
	}
	port := AppConfig.App.Port
	if port[0] != ':' {
		port = ":" + port
	}
	return port
}

// BatchDelay and RunTimeout expose the pipeline durations already
// converted from their integer config representation.
func BatchDelay() time.Duration {
	return time.Duration(AppConfig.Pipeline.BatchDelayMs) * time.Millisecond
}

func RunTimeout() time.Duration {
	return time.Duration(AppConfig.Pipeline.TimeoutSeconds) * time.Second
}

func printURL() {
	fmt.Printf("Translator:http://localhost%s/\n", GetPort())
}
