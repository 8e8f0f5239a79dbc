package redis

import (
	"context"
	"time"

	"med-catalog/internal/platform/logger"

	goredis "github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient crea el cliente compartido (pool interno de go-redis).
// No falla si Redis no está disponible: la conexión es perezosa y cada
// comando reintenta conectar. Los errores de conexión quedan en el log.
func NewClient(opts Options, log logger.Logger) *goredis.Client {
	log = log.With(map[string]any{"component": "redis", "addr": opts.Addr})

	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,

		DialTimeout:  3 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		OnConnect: func(ctx context.Context, cn *goredis.Conn) error {
			log.Info("conexión exitosa a Redis", nil)
			return nil
		},
	})
}

// CheckConnection hace un PING inicial y solo loguea el resultado.
func CheckConnection(ctx context.Context, c goredis.UniversalClient, log logger.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		log.Error("error de conexión a Redis", map[string]any{"error": err})
	}
}
