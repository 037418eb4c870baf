package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "PRICECATALOG"

// ConfigPathEnv переменная окружения с путем к TOML файлу
const ConfigPathEnv = EnvPrefix + "_CONFIG"

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string `mapstructure:"port" json:"port"`

	// База данных
	DatabasePath string `mapstructure:"database_path" json:"database_path"`

	// Connection pooling
	MaxOpenConns    int           `mapstructure:"max_open_conns" json:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime"`

	// Логирование
	LogLevel string `mapstructure:"log_level" json:"log_level"`

	// Пароль администратора для загрузки; пустой запрещает загрузку
	AdminPassword string `mapstructure:"admin_password" json:"-"`

	Import  ImportConfig  `mapstructure:"import" json:"import"`
	Catalog CatalogConfig `mapstructure:"catalog" json:"catalog"`
	CORS    CORSConfig    `mapstructure:"cors" json:"cors"`
}

// ImportConfig параметры импорта
type ImportConfig struct {
	BatchSize          int    `mapstructure:"batch_size" json:"batch_size"`
	MaxUploadBytes     int64  `mapstructure:"max_upload_bytes" json:"max_upload_bytes"`
	DefaultEncoding    string `mapstructure:"default_encoding" json:"default_encoding"`
	RateLimitPerMinute int    `mapstructure:"rate_limit_per_minute" json:"rate_limit_per_minute"`
}

// CatalogConfig параметры чтения каталога
type CatalogConfig struct {
	PageSize int `mapstructure:"page_size" json:"page_size"`
}

// CORSConfig разрешенные источники
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" json:"allowed_origins"`
}

// LoadConfig загружает конфигурацию: значения по умолчанию, затем TOML файл
// (path, иначе PRICECATALOG_CONFIG, иначе ./config.toml если есть),
// затем переменные окружения PRICECATALOG_*.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, GetDefaults())

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Явно указанный файл обязан существовать
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("port", d.Port)
	v.SetDefault("database_path", d.DatabasePath)
	v.SetDefault("max_open_conns", d.MaxOpenConns)
	v.SetDefault("max_idle_conns", d.MaxIdleConns)
	v.SetDefault("conn_max_lifetime", d.ConnMaxLifetime)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("admin_password", d.AdminPassword)
	v.SetDefault("import.batch_size", d.Import.BatchSize)
	v.SetDefault("import.max_upload_bytes", d.Import.MaxUploadBytes)
	v.SetDefault("import.default_encoding", d.Import.DefaultEncoding)
	v.SetDefault("import.rate_limit_per_minute", d.Import.RateLimitPerMinute)
	v.SetDefault("catalog.page_size", d.Catalog.PageSize)
	v.SetDefault("cors.allowed_origins", d.CORS.AllowedOrigins)
}

// UploadsEnabled загрузка разрешена только при заданном пароле
func (c *Config) UploadsEnabled() bool {
	return c.AdminPassword != ""
}
