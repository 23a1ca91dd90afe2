package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const placeholderSecret = "your-secret-key"

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Cassandra CassandraConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name       string
	Env        string
	Port       string
	Debug      bool
	LogPath    string
	BcryptCost int
}

type StoreConfig struct {
	Driver string // cassandra | postgres
}

type CassandraConfig struct {
	ContactPoints     []string
	Keyspace          string
	Consistency       string
	Timeout           time.Duration
	NumConns          int
	ReplicationFactor int
	AutoMigrate       bool
	SecondaryIndexes  bool
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether token revocation has somewhere to live.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	StoreDriverCassandra = "cassandra"
	StoreDriverPostgres  = "postgres"
)

// LoadConfig reads .env when present, then lets the environment override it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "manaibay")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("PORT", "8000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("STORE_DRIVER", StoreDriverCassandra)
	v.SetDefault("CASSANDRA_CONTACT_POINTS", "127.0.0.1")
	v.SetDefault("CASSANDRA_KEYSPACE", "clientkeyspace")
	v.SetDefault("CASSANDRA_CONSISTENCY", "QUORUM")
	v.SetDefault("CASSANDRA_TIMEOUT_SECONDS", 5)
	v.SetDefault("CASSANDRA_NUM_CONNS", 2)
	v.SetDefault("CASSANDRA_REPLICATION_FACTOR", 1)
	v.SetDefault("CASSANDRA_AUTO_MIGRATE", false)
	v.SetDefault("CASSANDRA_SECONDARY_INDEXES", false)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("JWT_EXPIRY_MINUTES", 30)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	if err := v.ReadInConfig(); err != nil {
		// .env is optional; the environment alone is enough
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	return buildConfig(v)
}

func buildConfig(v *viper.Viper) (*Config, error) {
	config := &Config{
		App: AppConfig{
			Name:       v.GetString("APP_NAME"),
			Env:        v.GetString("APP_ENV"),
			Port:       v.GetString("PORT"),
			Debug:      v.GetBool("DEBUG"),
			LogPath:    v.GetString("LOG_PATH"),
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("STORE_DRIVER")),
		},
		Cassandra: CassandraConfig{
			ContactPoints:     splitList(v.GetString("CASSANDRA_CONTACT_POINTS")),
			Keyspace:          v.GetString("CASSANDRA_KEYSPACE"),
			Consistency:       v.GetString("CASSANDRA_CONSISTENCY"),
			Timeout:           time.Duration(v.GetInt("CASSANDRA_TIMEOUT_SECONDS")) * time.Second,
			NumConns:          v.GetInt("CASSANDRA_NUM_CONNS"),
			ReplicationFactor: v.GetInt("CASSANDRA_REPLICATION_FACTOR"),
			AutoMigrate:       v.GetBool("CASSANDRA_AUTO_MIGRATE"),
			SecondaryIndexes:  v.GetBool("CASSANDRA_SECONDARY_INDEXES"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: time.Duration(v.GetInt("JWT_EXPIRY_MINUTES")) * time.Minute,
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverCassandra:
		if len(c.Cassandra.ContactPoints) == 0 || c.Cassandra.Keyspace == "" {
			return errors.New("CASSANDRA_CONTACT_POINTS and CASSANDRA_KEYSPACE are required")
		}
	case StoreDriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return errors.New("DB_HOST and DB_NAME are required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.Secret == placeholderSecret && !c.IsDevelopment() {
		return errors.New("JWT_SECRET still holds the placeholder value")
	}
	if c.JWT.Expiry <= 0 {
		return errors.New("JWT_EXPIRY_MINUTES must be positive")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Env, "development")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
