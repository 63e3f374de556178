package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/anime-service/internal/model/anime"
	"github.com/deppfellow/anime-service/internal/model/user"
	"github.com/deppfellow/anime-service/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// AnimeStore is an in-memory AnimeRepository. It enforces the same
// non-blank name check as the anime table.
type AnimeStore struct {
	mu     sync.Mutex
	nextID int
	rows   map[int]anime.Anime

	// Err, when set, is returned by every call.
	Err error
}

func NewAnimeStore(seed ...string) *AnimeStore {
	s := &AnimeStore{nextID: 1, rows: map[int]anime.Anime{}}
	for _, name := range seed {
		s.rows[s.nextID] = anime.Anime{ID: s.nextID, Name: name}
		s.nextID++
	}
	return s
}

func checkViolation() error {
	return &pgconn.PgError{
		Code:           "23514",
		Severity:       "ERROR",
		TableName:      "anime",
		ConstraintName: "anime_name_check",
	}
}

func (s *AnimeStore) FindAll(ctx context.Context) ([]anime.Anime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]anime.Anime, 0, len(s.rows))
	for _, a := range s.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *AnimeStore) FindByID(ctx context.Context, id int) (*anime.Anime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	a, ok := s.rows[id]
	if !ok {
		return nil, sqlerr.NoRows("anime")
	}
	return &a, nil
}

func (s *AnimeStore) Save(ctx context.Context, a anime.Anime) (*anime.Anime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.saveLocked(a)
}

func (s *AnimeStore) saveLocked(a anime.Anime) (*anime.Anime, error) {
	if strings.TrimSpace(a.Name) == "" {
		return nil, checkViolation()
	}

	if a.ID == 0 {
		a.ID = s.nextID
		s.nextID++
	} else if _, ok := s.rows[a.ID]; !ok {
		return nil, sqlerr.NoRows("anime")
	}

	s.rows[a.ID] = a
	return &a, nil
}

// SaveAll stores every item or none of them.
func (s *AnimeStore) SaveAll(ctx context.Context, animes []anime.Anime) ([]anime.Anime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, a := range animes {
		if strings.TrimSpace(a.Name) == "" {
			return nil, checkViolation()
		}
	}

	saved := make([]anime.Anime, 0, len(animes))
	for _, a := range animes {
		stored, err := s.saveLocked(a)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *stored)
	}
	return saved, nil
}

func (s *AnimeStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.rows[id]; !ok {
		return sqlerr.NoRows("anime")
	}
	delete(s.rows, id)
	return nil
}

// Len returns the number of stored rows.
func (s *AnimeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// Get returns a stored row without going through the repository API.
func (s *AnimeStore) Get(id int) (anime.Anime, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.rows[id]
	return a, ok
}

// UserStore is an in-memory UserRepository with a unique username index.
type UserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[string]user.User
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1, users: map[string]user.User{}}
}

// Add stores a user with a {bcrypt} password hashed at minimum cost.
func (s *UserStore) Add(t *testing.T, username, raw, authorities string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	_, err = s.Create(context.Background(), user.User{
		Username:    username,
		Password:    "{bcrypt}" + string(hash),
		Name:        username,
		Authorities: authorities,
	})
	if err != nil {
		t.Fatalf("add user %s: %v", username, err)
	}
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return nil, sqlerr.NoRows("users")
	}
	return &u, nil
}

func (s *UserStore) Create(ctx context.Context, u user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.Username]; exists {
		return nil, fmt.Errorf("failed to create user %s: %w", u.Username, &pgconn.PgError{
			Code:           "23505",
			Severity:       "ERROR",
			TableName:      "users",
			ConstraintName: "users_username_key",
		})
	}

	u.ID = s.nextID
	s.nextID++
	s.users[u.Username] = u
	return &u, nil
}
