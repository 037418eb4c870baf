package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var validLogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

var validEncodings = []string{"utf-8", "utf8", "shift_jis", "shift-jis", "sjis", "cp932"}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.DatabasePath == "" {
		errors = append(errors, "database path is required")
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	// Валидация уровня логирования
	if c.LogLevel != "" && !contains(validLogLevels, strings.ToUpper(c.LogLevel)) {
		errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", ")))
	}

	// Импорт
	if c.Import.BatchSize < 1 {
		errors = append(errors, "import batch size must be at least 1")
	}
	if c.Import.MaxUploadBytes < 1 {
		errors = append(errors, "import max upload bytes must be positive")
	}
	if c.Import.RateLimitPerMinute < 1 {
		errors = append(errors, "import rate limit must be at least 1 per minute")
	}
	if c.Import.DefaultEncoding != "" && !contains(validEncodings, strings.ToLower(c.Import.DefaultEncoding)) {
		errors = append(errors, fmt.Sprintf("invalid default encoding: %s (valid: utf-8, shift_jis)", c.Import.DefaultEncoding))
	}

	if c.Catalog.PageSize < 1 {
		errors = append(errors, "catalog page size must be at least 1")
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		errors = append(errors, "cors allowed origins must not be empty (use \"*\" to allow any)")
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			errors = append(errors, "cors allowed origins must not contain empty values")
			break
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// GetDefaults возвращает конфигурацию со значениями по умолчанию
func GetDefaults() *Config {
	return &Config{
		Port:            "9999",
		DatabasePath:    "catalog.db",
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		LogLevel:        "INFO",
		Import: ImportConfig{
			BatchSize:          500,
			MaxUploadBytes:     20 << 20,
			DefaultEncoding:    "utf-8",
			RateLimitPerMinute: 10,
		},
		Catalog: CatalogConfig{
			PageSize: 1000,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}
