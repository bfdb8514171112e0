package cache

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/internal/pkg/env"
)

var client *redis.Client

// SetupCache initializes the connection to the Redis/Dragonfly server that
// backs sessions and the rate limiter.
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	if err := Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("could not connect to cache")
	} else {
		log.Info().Str("addr", client.Options().Addr).Msg("connected to cache")
	}
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

// Ping checks the cache connection.
func Ping(ctx context.Context) error {
	return GetClient().Ping(ctx).Err()
}

// Endpoint splits the client address for the fiber storage drivers, which
// take host and port separately.
func Endpoint() (host string, port int, password string) {
	host, port = "127.0.0.1", 6379
	opts := GetClient().Options()
	if opts == nil {
		return host, port, ""
	}
	if h, p, err := net.SplitHostPort(opts.Addr); err == nil {
		host = h
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}
	return host, port, opts.Password
}

// NewStorage creates a fiber storage on the cache server using the given
// database, so sessions and rate limits do not share keys with DB 0.
func NewStorage(database int) fiber.Storage {
	host, port, password := Endpoint()

	return redisstorage.New(redisstorage.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: database,
		Reset:    false,
	})
}
