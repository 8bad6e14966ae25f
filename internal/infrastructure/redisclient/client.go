// Package redisclient expone el cliente Redis usado para los contadores
// calientes de actividad. Redis acá es acelerador, no fuente de verdad:
// la tabla de clicks en PostgreSQL respalda todos los reportes.
package redisclient

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/turismo-market/pkg/config"
)

// New crea un cliente Redis y verifica conectividad.
func New(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
