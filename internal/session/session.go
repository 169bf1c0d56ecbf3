package session

import (
	"context"
	"strings"
	"sync"
)

// Rôles connus de la console. La comparaison passe toujours par SameRole :
// l'amont renvoie la casse qu'il veut ("Administrador", "administrador"...).
const (
	RoleAdmin    = "administrador"
	RoleCustomer = "cliente"
)

// Snapshot est l'instantané sérialisé de session : il existe si et seulement
// si un utilisateur est connecté, et porte alors toujours un rôle.
type Snapshot struct {
	UserID string `json:"id"`
	Name   string `json:"nombre"`
	Email  string `json:"correo,omitempty"`
	Role   string `json:"rol"`
}

// Store persiste un snapshot par session. Absent → (nil, nil).
type Store interface {
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	Save(ctx context.Context, sessionID string, snap *Snapshot) error
	Delete(ctx context.Context, sessionID string) error
}

// SameRole est LE comparateur de rôles : insensible à la casse et aux
// espaces parasites. Toute décision d'accès doit passer par lui.
func SameRole(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// MemoryStore : implémentation en mémoire, pour les tests et le mode dégradé
// sans Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]Snapshot)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[sessionID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[sessionID] = *snap
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, sessionID)
	return nil
}
