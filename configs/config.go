package configs

import (
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

// Config wraps the process-wide viper instance. It is created once at
// startup and never mutated afterwards.
type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		config = &Config{Viper: initialize()}
	})
	return config
}

func initialize() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.port", 8000)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "hive")
	v.SetDefault("database.password", "hive123")
	v.SetDefault("database.name", "hive_db")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.events_channel", "hive_events")
	v.SetDefault("jwt.secret", "hive-secret-key-2025")
	v.SetDefault("jwt.expiration_time", 7*24*60*60)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("HIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using defaults and environment:", err)
	}

	return v
}
