package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Slots       SlotsConfig       `toml:"slots"`
	Pricing     PricingConfig     `toml:"pricing"`
	Delivery    DeliveryConfig    `toml:"delivery"`
	Notifier    NotifierConfig    `toml:"notifier"`
	Geolocation GeolocationConfig `toml:"geolocation"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SlotsConfig настройки генерации временных слотов
type SlotsConfig struct {
	StartHour   int `toml:"start_hour"`
	EndHour     int `toml:"end_hour"`
	StepMinutes int `toml:"step_minutes"`
}

// PricingConfig настройки ценообразования
type PricingConfig struct {
	PickUpCharge float64 `toml:"pick_up_charge"`
}

// DeliveryConfig настройки проверки доступности забора устройства
type DeliveryConfig struct {
	ShopLat             float64 `toml:"shop_lat"`
	ShopLon             float64 `toml:"shop_lon"`
	MaxPickUpDistanceKm float64 `toml:"max_pick_up_distance_km"`
}

// NotifierConfig настройки клиента сервиса уведомлений
type NotifierConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// GeolocationConfig настройки клиента сервиса геолокации
type GeolocationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Slots.StepMinutes <= 0 {
		return fmt.Errorf("config: slots.step_minutes must be positive")
	}
	if c.Slots.EndHour <= c.Slots.StartHour {
		return fmt.Errorf("config: slots.end_hour must be greater than slots.start_hour")
	}
	if c.Delivery.MaxPickUpDistanceKm <= 0 {
		return fmt.Errorf("config: delivery.max_pick_up_distance_km must be positive")
	}
	return nil
}
