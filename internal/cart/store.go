package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL court : le panier est lié à la session de caisse, il n'a pas vocation
// à survivre longtemps côté serveur.
const cartTTL = 2 * time.Hour

// Store persiste un panier par session dans Redis (clé "cart:<sid>").
// Clé absente → panier vide.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.rdb.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture panier: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("décodage panier: %w", err)
	}
	return &c, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encodage panier: %w", err)
	}
	return s.rdb.Set(ctx, cartKey(sessionID), data, cartTTL).Err()
}

// Clear supprime la clé ; appelé après achat réussi, sur logout et sur
// remise à zéro explicite.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, cartKey(sessionID)).Err()
}
