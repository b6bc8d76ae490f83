package config

import (
	"fmt"
	"strings"
	"time"

	"shelf_inventory/db"
	"shelf_inventory/logger"

	"github.com/spf13/viper"
)

type Config struct {
	Port       string
	WebOrigins []string

	DB db.Config

	RedisAddr      string
	RedisPassword  string
	ExportCacheTTL time.Duration

	Log logger.Config
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("WEB_ORIGIN", "*")
	v.SetDefault("DB_DRIVER", db.DriverPostgres)
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "inventory")
	v.SetDefault("SQLITE_PATH", "inventory.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("EXPORT_CACHE_TTL", 5*time.Minute)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GORM_LOG", "warn")
}

// Load 从环境变量读取配置（.env 由 LoadEnv 负责）
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	defaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	driver := strings.ToLower(v.GetString("DB_DRIVER"))
	return Config{
		Port:       v.GetString("PORT"),
		WebOrigins: splitCSV(v.GetString("WEB_ORIGIN")),
		DB: db.Config{
			Driver:       driver,
			DSN:          dsn(v, driver),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			LogLevel:     v.GetString("GORM_LOG"),
		},
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		ExportCacheTTL: v.GetDuration("EXPORT_CACHE_TTL"),
		Log: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}

func dsn(v *viper.Viper, driver string) string {
	if s := v.GetString("DATABASE_URL"); s != "" {
		return s
	}
	if driver == db.DriverSQLite {
		return v.GetString("SQLITE_PATH") + "?_pragma=foreign_keys(1)"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		v.GetString("DB_HOST"),
		v.GetString("DB_USER"),
		v.GetString("DB_PASSWORD"),
		v.GetString("DB_NAME"),
		v.GetString("DB_PORT"),
	)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
