package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/career-dashboard/models"
)

func TestStore_StartsUnauthenticated(t *testing.T) {
	s := NewStore()

	st := s.Current()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Nil(t, s.User())
}

func TestStore_SubscribeReplaysLatest(t *testing.T) {
	s := NewStore()
	s.SetAuthenticated(models.User{ID: "1", Email: "a@b.c"})

	var got []State
	unsubscribe := s.Subscribe(func(st State) { got = append(got, st) })
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.True(t, got[0].Authenticated)
	require.NotNil(t, got[0].User)
	assert.Equal(t, "a@b.c", got[0].User.Email)
}

func TestStore_TransitionsDeliveredInOrder(t *testing.T) {
	s := NewStore()

	var got []bool
	s.Subscribe(func(st State) { got = append(got, st.Authenticated) })

	s.SetAuthenticated(models.User{ID: "1"})
	s.SetUnauthenticated()
	s.SetAuthenticated(models.User{ID: "2"})

	assert.Equal(t, []bool{false, true, false, true}, got)
	assert.Equal(t, "2", s.User().ID)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore()

	calls := 0
	unsubscribe := s.Subscribe(func(State) { calls++ })
	unsubscribe()
	unsubscribe()

	s.SetAuthenticated(models.User{ID: "1"})
	assert.Equal(t, 1, calls)
}

func TestStore_ListenersNeverSeeHalfStates(t *testing.T) {
	s := NewStore()

	var mu sync.Mutex
	var bad int
	s.Subscribe(func(st State) {
		mu.Lock()
		defer mu.Unlock()
		if st.Authenticated != (st.User != nil) {
			bad++
		}
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetAuthenticated(models.User{ID: "x"})
		}()
		go func() {
			defer wg.Done()
			s.SetUnauthenticated()
		}()
	}
	wg.Wait()

	assert.Zero(t, bad)
	st := s.Current()
	assert.Equal(t, st.Authenticated, st.User != nil)
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	s := NewStore()
	s.SetAuthenticated(models.User{ID: "1", FirstName: "Ada"})

	st := s.Current()
	st.User.FirstName = "Mutated"

	assert.Equal(t, "Ada", s.User().FirstName)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()

	calls := 0
	s.Subscribe(func(State) { calls++ })
	s.SetAuthenticated(models.User{ID: "1"})

	s.Reset()
	assert.False(t, s.IsAuthenticated())

	s.SetAuthenticated(models.User{ID: "2"})
	assert.Equal(t, 2, calls)
}
