package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config robdronegod (HTTP API) configuration, loaded from environment variables.
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  DatabaseConfig
	Redis     struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	Planner PlannerConfig
	MQTT    MQTTConfig
	Limits  LimitsConfig
}

// DatabaseConfig PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// PlannerConfig external path/task planner service.
type PlannerConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// MQTTConfig robisep telemetry ingestion (disabled by default).
type MQTTConfig struct {
	Enabled  bool
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
}

// LimitsConfig validation limits handed to the domain layer.
// Kept here so they are explicit inputs rather than process-wide globals.
type LimitsConfig struct {
	MaxRoomNameLength        int
	MaxRoomDescriptionLength int
	MaxBuildingCodeLength    int
	MaxRobisepCodeLength     int
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to true for local dev: if DB is unavailable, robdronegod falls back to
	// in-memory repositories instead of refusing to start.
	cfg.DBEnabled = getEnv("DB_ENABLED", "true") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "robdronego")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Planner.BaseURL = getEnv("PLANNER_BASE_URL", "http://localhost:5000")
	cfg.Planner.TimeoutSeconds = parseInt(getEnv("PLANNER_TIMEOUT_SECONDS", "30"), 30)

	cfg.MQTT.Enabled = getEnv("MQTT_ENABLED", "false") == "true"
	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "robdronegod")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.Topic = getEnv("MQTT_TOPIC", "robisep/+/state")

	cfg.Limits.MaxRoomNameLength = parseInt(getEnv("MAX_ROOM_NAME_LENGTH", "50"), 50)
	cfg.Limits.MaxRoomDescriptionLength = parseInt(getEnv("MAX_ROOM_DESCRIPTION_LENGTH", "250"), 250)
	cfg.Limits.MaxBuildingCodeLength = parseInt(getEnv("MAX_BUILDING_CODE_LENGTH", "5"), 5)
	cfg.Limits.MaxRobisepCodeLength = parseInt(getEnv("MAX_ROBISEP_CODE_LENGTH", "30"), 30)

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
