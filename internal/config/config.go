package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Drivers de almacenamiento soportados.
const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config se carga una sola vez al arrancar, desde env (y .env si existe).
type Config struct {
	Port         int           `envconfig:"PORT" default:"3000"`
	FrontendURL  string        `envconfig:"FRONTEND_URL"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	// tiempo máximo para drenar requests en curso al apagar
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"redis"`
	DBDSN         string `envconfig:"DB_DSN"`

	AppName string `envconfig:"APP_NAME" default:"med-catalog"`

	Redis RedisConfig `envconfig:"REDIS"`
	Log   LogConfig   `envconfig:"LOG"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// Addr devuelve host:port del servidor Redis.
func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// ListenAddr devuelve la dirección de escucha del servidor HTTP.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load lee un .env opcional y luego procesa el entorno.
// Las variables ya presentes en el entorno tienen prioridad sobre el .env.
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	switch c.StorageDriver {
	case DriverRedis, DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return errors.New("DB_DSN is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.StorageDriver)
	}
	return nil
}

// loadDotEnv ignora archivos inexistentes (en prod las variables vienen del entorno).
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}
