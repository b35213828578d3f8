package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/pkg/apperrors"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSessionRepositoryLifecycle(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	entry, err := repo.Create(ctx, "s1", navigation.NewRouter())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Count())

	_, err = repo.Create(ctx, "s1", navigation.NewRouter())
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, entry, got)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "s1"), apperrors.ErrSessionNotFound)
}

func TestSessionRepositorySweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)}
	repo := NewSessionRepository().WithClock(clock.Now)
	ctx := context.Background()

	_, err := repo.Create(ctx, "idle", navigation.NewRouter())
	require.NoError(t, err)
	busy, err := repo.Create(ctx, "busy", navigation.NewRouter())
	require.NoError(t, err)

	clock.Advance(50 * time.Minute)
	require.NoError(t, busy.Do(func(r *navigation.Router) error {
		_, err := r.Login(navigation.RoleAdmin)
		return err
	}))
	clock.Advance(20 * time.Minute)

	expired := repo.Sweep(ctx, time.Hour)

	assert.Equal(t, []string{"idle"}, expired)
	assert.Equal(t, 1, repo.Count())
	assert.Equal(t, clock.Now().Add(-20*time.Minute), busy.LastSeen())
}

func TestSessionEntrySerialisesTransitions(t *testing.T) {
	repo := NewSessionRepository()
	entry, err := repo.Create(context.Background(), "s", navigation.NewRouter())
	require.NoError(t, err)
	require.NoError(t, entry.Do(func(r *navigation.Router) error {
		_, err := r.Login(navigation.RoleStudent)
		return err
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = entry.Do(func(r *navigation.Router) error {
				if i%2 == 0 {
					_, err := r.ViewThesisDetail("1")
					return err
				}
				r.Back()
				return nil
			})
		}(i)
	}
	wg.Wait()

	var view navigation.ViewDescriptor
	require.NoError(t, entry.Do(func(r *navigation.Router) error {
		view = r.View()
		return nil
	}))
	assert.Contains(t, []navigation.Page{navigation.PageThesis, navigation.PageThesisDetail}, view.Page)
}
