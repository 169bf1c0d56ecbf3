package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initialise la connexion Redis
func InitRedis() error {
	redisHost := os.Getenv("REDIS_HOST")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if redisHost == "" {
		return fmt.Errorf("REDIS_HOST non configuré")
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     redisPassword,
		DB:           0, // Base de données par défaut
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Test de connexion
	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("impossible de se connecter à Redis: %v", err)
	}

	log.Println("✅ Redis connecté avec succès")
	return nil
}

// CloseRedis ferme la connexion Redis
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// --- Verrou de soumission ---

// CheckoutLocks pose et libère le verrou d'achat en cours d'une session :
// empêche la double soumission tant que la requête amont n'a pas abouti.
type CheckoutLocks struct {
	rdb *redis.Client
}

func NewCheckoutLocks(rdb *redis.Client) *CheckoutLocks {
	return &CheckoutLocks{rdb: rdb}
}

func (l *CheckoutLocks) Acquire(ctx context.Context, sessionID string, duration time.Duration) (bool, error) {
	key := fmt.Sprintf("checkout_lock:%s", sessionID)
	return l.rdb.SetNX(ctx, key, "1", duration).Result()
}

func (l *CheckoutLocks) Release(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf("checkout_lock:%s", sessionID)
	return l.rdb.Del(ctx, key).Err()
}
