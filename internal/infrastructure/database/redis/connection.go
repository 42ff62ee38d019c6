// internal/infrastructure/database/redis/connection.go
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/farm-storefront/internal/config"
)

const (
	connectAttempts = 3
	connectBackoff  = 500 * time.Millisecond
	pingTimeout     = 2 * time.Second
)

// Store is the shared Redis used for the catalog cache and rate limit counters.
// Carts never touch it.
type Store struct {
	rdb  *redis.Client
	addr string
	log  *logrus.Logger
}

// NewConnection dials Redis and waits for it to answer, retrying a few
// times so the API can start alongside a container that is still booting.
func NewConnection(cfg *config.Config, log *logrus.Logger) (*Store, error) {
	s := &Store{
		rdb:  redis.NewClient(clientOptions(cfg.GetRedisAddr(), cfg.Redis)),
		addr: cfg.GetRedisAddr(),
		log:  log,
	}

	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if err = s.ping(context.Background()); err == nil {
			log.WithFields(logrus.Fields{"addr": s.addr, "attempt": attempt}).Info("redis ready")
			return s, nil
		}
		log.WithError(err).WithField("attempt", attempt).Warn("redis not answering")
		if attempt < connectAttempts {
			time.Sleep(time.Duration(attempt) * connectBackoff)
		}
	}

	_ = s.rdb.Close()
	return nil, fmt.Errorf("failed to connect to Redis at %s: %w", s.addr, err)
}

func clientOptions(addr string, rc config.RedisConfig) *redis.Options {
	opts := &redis.Options{
		Addr:         addr,
		Password:     rc.Password,
		DB:           rc.DB,
		PoolSize:     rc.PoolSize,
		MinIdleConns: rc.MinIdleConns,
		DialTimeout:  pingTimeout,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}
	// both users fall back to their own path on a miss, so fail fast
	// instead of queueing behind a saturated pool
	opts.PoolTimeout = opts.ReadTimeout
	return opts
}

func (s *Store) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.rdb.Ping(ctx).Err()
}

// Client exposes the go-redis client to the catalog cache and rate limiter
func (s *Store) Client() *redis.Client {
	return s.rdb
}

// Health reports whether Redis answers a ping
func (s *Store) Health() error {
	if err := s.ping(context.Background()); err != nil {
		stats := s.rdb.PoolStats()
		s.log.WithFields(logrus.Fields{
			"total_conns": stats.TotalConns,
			"idle_conns":  stats.IdleConns,
			"timeouts":    stats.Timeouts,
		}).Debug("redis health check failed")
		return err
	}
	return nil
}

// Close releases the connection pool
func (s *Store) Close() error {
	s.log.WithField("addr", s.addr).Debug("closing redis pool")
	return s.rdb.Close()
}
