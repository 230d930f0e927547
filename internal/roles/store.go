package roles

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/patrickmn/go-cache"
)

var (
	ErrNotFound  = errors.New("role not found")
	ErrDuplicate = errors.New("role name already exists")
	ErrEmptyName = errors.New("role name is required")
)

type Role struct {
	ID   int64  `json:"roleid"`
	Name string `json:"name"`
}

// Store keeps roles in memory, indexed by id and by upper-cased name.
// Entries never expire.
type Store struct {
	mu     sync.Mutex
	byID   *cache.Cache
	byName *cache.Cache
	nextID int64
}

func NewStore() *Store {
	return &Store{
		byID:   cache.New(cache.NoExpiration, 0),
		byName: cache.New(cache.NoExpiration, 0),
	}
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (s *Store) FindAll() []Role {
	items := s.byID.Items()
	out := make([]Role, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Role))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) FindByID(id int64) (Role, error) {
	v, ok := s.byID.Get(idKey(id))
	if !ok {
		return Role{}, fmt.Errorf("role id %d: %w", id, ErrNotFound)
	}
	return v.(Role), nil
}

func (s *Store) FindByName(name string) (Role, error) {
	v, ok := s.byName.Get(normalizeName(name))
	if !ok {
		return Role{}, fmt.Errorf("role name %q: %w", name, ErrNotFound)
	}
	return s.FindByID(v.(int64))
}

// Save inserts a new role. The caller's id is ignored.
func (s *Store) Save(name string) (Role, error) {
	name = normalizeName(name)
	if name == "" {
		return Role{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID + 1
	if err := s.byName.Add(name, id, cache.NoExpiration); err != nil {
		return Role{}, fmt.Errorf("role name %q: %w", name, ErrDuplicate)
	}
	s.nextID = id

	role := Role{ID: id, Name: name}
	s.byID.Set(idKey(id), role, cache.NoExpiration)
	return role, nil
}

// Update renames an existing role.
func (s *Store) Update(id int64, name string) (Role, error) {
	name = normalizeName(name)
	if name == "" {
		return Role{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID.Get(idKey(id))
	if !ok {
		return Role{}, fmt.Errorf("role id %d: %w", id, ErrNotFound)
	}
	role := v.(Role)
	if role.Name == name {
		return role, nil
	}

	if err := s.byName.Add(name, id, cache.NoExpiration); err != nil {
		return Role{}, fmt.Errorf("role name %q: %w", name, ErrDuplicate)
	}
	s.byName.Delete(role.Name)

	role.Name = name
	s.byID.Set(idKey(id), role, cache.NoExpiration)
	return role, nil
}

func (s *Store) Count() int {
	return s.byID.ItemCount()
}

// Seed creates the default roles, skipping any that already exist.
func Seed(s *Store) error {
	for _, name := range []string{"ADMIN", "USER", "DATA"} {
		if _, err := s.Save(name); err != nil && !errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}
