package articles

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
	ErrNotFound   = errors.New("article not found")
	ErrDuplicate  = errors.New("article title already exists")
	ErrEmptyTitle = errors.New("article title is required")
)

// Store keeps articles in memory. Titles are unique, compared exactly.
type Store struct {
	mu      sync.Mutex
	byID    *cache.Cache
	byTitle *cache.Cache
	nextID  int64
}

func NewStore() *Store {
	return &Store{
		byID:    cache.New(cache.NoExpiration, 0),
		byTitle: cache.New(cache.NoExpiration, 0),
	}
}

func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (s *Store) FindAll() []Article {
	items := s.byID.Items()
	out := make([]Article, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Article).clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) FindByID(id int64) (Article, error) {
	v, ok := s.byID.Get(idKey(id))
	if !ok {
		return Article{}, fmt.Errorf("article id %d: %w", id, ErrNotFound)
	}
	return v.(Article).clone(), nil
}

// Save inserts a copy of a under a fresh id and returns the stored value.
func (s *Store) Save(a Article) (Article, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return Article{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID + 1
	if err := s.byTitle.Add(a.Title, id, cache.NoExpiration); err != nil {
		return Article{}, fmt.Errorf("article title %q: %w", a.Title, ErrDuplicate)
	}
	s.nextID = id

	a.ID = id
	stored := a.clone()
	s.byID.Set(idKey(id), stored, cache.NoExpiration)
	return stored.clone(), nil
}

// Update applies p to the article with the given id.
func (s *Store) Update(id int64, p Patch) (Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID.Get(idKey(id))
	if !ok {
		return Article{}, fmt.Errorf("article id %d: %w", id, ErrNotFound)
	}
	current := v.(Article)
	next := current.clone()
	next.Update(p)
	next.Title = strings.TrimSpace(next.Title)
	if next.Title == "" {
		return Article{}, ErrEmptyTitle
	}

	if next.Title != current.Title {
		if err := s.byTitle.Add(next.Title, id, cache.NoExpiration); err != nil {
			return Article{}, fmt.Errorf("article title %q: %w", next.Title, ErrDuplicate)
		}
		s.byTitle.Delete(current.Title)
	}

	s.byID.Set(idKey(id), next, cache.NoExpiration)
	return next.clone(), nil
}
