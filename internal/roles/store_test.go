package roles

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAssignsIncreasingIDsAndUppercases(t *testing.T) {
	s := NewStore()

	admin, err := s.Save("admin")
	require.NoError(t, err)
	user, err := s.Save(" User ")
	require.NoError(t, err)

	assert.Equal(t, Role{ID: 1, Name: "ADMIN"}, admin)
	assert.Equal(t, Role{ID: 2, Name: "USER"}, user)
	assert.Equal(t, []Role{admin, user}, s.FindAll())
}

func TestSaveRejectsDuplicateAndEmptyNames(t *testing.T) {
	s := NewStore()
	_, err := s.Save("data")
	require.NoError(t, err)

	_, err = s.Save("DATA")
	assert.True(t, errors.Is(err, ErrDuplicate))

	_, err = s.Save("   ")
	assert.True(t, errors.Is(err, ErrEmptyName))

	assert.Equal(t, 1, s.Count())

	// a failed insert must not burn an id
	next, err := s.Save("other")
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	s := NewStore()
	saved, err := s.Save("Admin")
	require.NoError(t, err)

	got, err := s.FindByName("aDmIn")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	_, err = s.FindByName("nobody")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.FindByID(99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateRenamesAndReindexes(t *testing.T) {
	s := NewStore()
	role, err := s.Save("user")
	require.NoError(t, err)
	_, err = s.Save("admin")
	require.NoError(t, err)

	updated, err := s.Update(role.ID, "member")
	require.NoError(t, err)
	assert.Equal(t, Role{ID: role.ID, Name: "MEMBER"}, updated)

	_, err = s.FindByName("user")
	assert.True(t, errors.Is(err, ErrNotFound))
	got, err := s.FindByName("member")
	require.NoError(t, err)
	assert.Equal(t, role.ID, got.ID)

	// renaming to its own name is a no-op
	_, err = s.Update(role.ID, "Member")
	require.NoError(t, err)

	_, err = s.Update(role.ID, "admin")
	assert.True(t, errors.Is(err, ErrDuplicate))

	_, err = s.Update(42, "ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSeedIsIdempotent(t *testing.T) {
	s := NewStore()
	require.NoError(t, Seed(s))
	require.NoError(t, Seed(s))

	names := []string{}
	for _, r := range s.FindAll() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"ADMIN", "USER", "DATA"}, names)
}

func TestConcurrentSaveKeepsNamesUnique(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Save("race"); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, s.Count())
}
