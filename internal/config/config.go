package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Sheets SheetsConfig
	Bank   BankConfig
	Redis  RedisConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SheetsConfig locates the question sheet and the credentials used to read it.
type SheetsConfig struct {
	SpreadsheetID   string
	Tab             string
	CredentialsFile string
	CredentialsJSON string
	APIKey          string
	Endpoint        string // optional override, used against emulators
	RequestTimeout  time.Duration
}

// BankConfig controls the in-memory question bank.
type BankConfig struct {
	TTL           time.Duration
	FetchAttempts int
	RetryBackoff  time.Duration
	// Aliases holds extra header labels per logical field, tried after the built-in ones.
	Aliases map[string][]string
}

type RedisConfig struct {
	Address     string
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("sheets.tab", "Sheet1")
	viper.SetDefault("sheets.request_timeout", "10s")
	viper.SetDefault("bank.ttl", "5m")
	viper.SetDefault("bank.fetch_attempts", 1)
	viper.SetDefault("bank.retry_backoff", "500ms")
	viper.SetDefault("redis.snapshot_ttl", "24h")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	setDefaults()
	viper.AutomaticEnv()

	// A missing config file is fine: everything can come from the environment.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(viper.GetViper()), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   v.GetString("sheets.spreadsheet_id"),
			Tab:             v.GetString("sheets.tab"),
			CredentialsFile: v.GetString("sheets.credentials_file"),
			CredentialsJSON: v.GetString("sheets.credentials_json"),
			APIKey:          v.GetString("sheets.api_key"),
			Endpoint:        v.GetString("sheets.endpoint"),
			RequestTimeout:  v.GetDuration("sheets.request_timeout"),
		},
		Bank: BankConfig{
			TTL:           v.GetDuration("bank.ttl"),
			FetchAttempts: v.GetInt("bank.fetch_attempts"),
			RetryBackoff:  v.GetDuration("bank.retry_backoff"),
			Aliases:       v.GetStringMapStringSlice("bank.aliases"),
		},
		Redis: RedisConfig{
			Address:     v.GetString("redis.address"),
			Password:    v.GetString("redis.password"),
			DB:          v.GetInt("redis.db"),
			SnapshotTTL: v.GetDuration("redis.snapshot_ttl"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if sheetID := os.Getenv("SHEET_ID"); sheetID != "" {
		config.Sheets.SpreadsheetID = sheetID
	}
	if tab := os.Getenv("SHEET_TAB"); tab != "" {
		config.Sheets.Tab = tab
	}
	if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		config.Sheets.CredentialsFile = credFile
	}
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS_JSON"); credJSON != "" {
		config.Sheets.CredentialsJSON = credJSON
	}
	if apiKey := os.Getenv("SHEETS_API_KEY"); apiKey != "" {
		config.Sheets.APIKey = apiKey
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		v.Set("server.port", port)
		config.Server.Port = v.GetInt("server.port")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config
}

// HasCredentials reports whether any way of authenticating to the Sheets API is configured.
func (s SheetsConfig) HasCredentials() bool {
	return s.CredentialsFile != "" || s.CredentialsJSON != "" || s.APIKey != ""
}
