package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	apiKeyENV         = "GATEWAY_API_KEY"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	databaseDSN       = "DATABASE_DSN"
)

// Config ...
type Config struct {
	Gateway struct {
		Host   string `yaml:"host"`
		APIKey string `yaml:"api_key"`
	} `yaml:"gateway"`

	DB string `yaml:"db_dsn"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	Health struct {
		Addr string `yaml:"addr"`
	} `yaml:"health"`

	Tracing struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"tracing"`

	Websocket struct {
		Enabled bool     `yaml:"enabled"`
		URL     string   `yaml:"url"`
		Topics  []string `yaml:"topics"`
	} `yaml:"websocket"`

	Trading struct {
		PortfolioID  string   `yaml:"portfolio_id"`
		DeliveryArea string   `yaml:"delivery_area"`
		Products     []string `yaml:"products"`
		AlgoID       string   `yaml:"algo_id"`
		SignalSource string   `yaml:"signal_source"`
		// ContractLimit caps how many upcoming contracts one run considers.
		ContractLimit int `yaml:"contract_limit"`
		// MaxAttempts is the total attempt budget of one run, first try included.
		MaxAttempts int `yaml:"max_attempts"`
		// RunInterval is env-only (RUN_INTERVAL), the embedding scheduler cadence.
		RunInterval time.Duration
	} `yaml:"trading"`
}

func NewConfig() (*Config, error) {

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		log.Fatalf("Failed to open config file: %v", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	config := Config{}
	config.Health.Addr = getenvDefault("HEALTH_ADDR", ":8080")
	config.Trading.Products = []string{"Intraday_Quarter_Hour_Power", "XBID_Quarter_Hour_Power"}
	config.Trading.AlgoID = getenvDefault("ALGO_ID", "UNWIND1")
	config.Trading.SignalSource = getenvDefault("SIGNAL_SOURCE", "OptSystem")
	config.Trading.ContractLimit = intFromEnv("CONTRACT_LIMIT", 12)
	config.Trading.MaxAttempts = intFromEnv("MAX_ATTEMPTS", 3)
	config.Trading.RunInterval = durationFromEnv("RUN_INTERVAL", "15m")

	err = decoder.Decode(&config)
	if err != nil {
		log.Fatalf("Failed to decode config file: %v", err)
	}

	if key := os.Getenv(apiKeyENV); key != "" {
		config.Gateway.APIKey = key
	}

	if token := os.Getenv(tokenTelegramENV); token != "" {
		config.Telegram.Token = token
	}

	if dsn := os.Getenv(databaseDSN); dsn != "" {
		config.DB = dsn
	}

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
