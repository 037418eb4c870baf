package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация подключения к БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB обертка для работы с базой прайс-листа
type DB struct {
	conn *sql.DB
	path string
}

// NewDB создает новое подключение с настройками по умолчанию
func NewDB(dbPath string) (*DB, error) {
	return NewDBWithConfig(dbPath, DBConfig{})
}

// isInMemory определяет, что путь относится к in-memory SQLite
func isInMemory(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}
	// Формат file:memdb?mode=memory&cache=shared также хранит БД в памяти
	return strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory")
}

// NewDBWithConfig открывает базу, настраивает пул и применяет миграции
func NewDBWithConfig(dbPath string, config DBConfig) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Для in-memory SQLite требуется ровно одно соединение,
	// иначе каждое новое соединение получит пустую БД без миграций
	if isInMemory(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(4)
	}

	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(2)
	}

	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL позволяет читать каталог во время импорта
	if !isInMemory(dbPath) {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			slog.Warn("failed to enable WAL mode", "error", err)
		}
		if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
			slog.Warn("failed to set busy timeout", "error", err)
		}
	}

	if err := RunMigrations(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &DB{conn: conn, path: dbPath}, nil
}

// Close закрывает подключение
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping проверяет подключение к базе данных
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// GetConnection возвращает *sql.DB для прямого доступа
func (db *DB) GetConnection() *sql.DB {
	return db.conn
}

// Path путь к файлу базы
func (db *DB) Path() string {
	return db.path
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
