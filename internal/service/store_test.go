package service

import (
	"sync"
	"testing"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerStore_Empty(t *testing.T) {
	store := NewCustomerStore()

	customers, loadedAt, gen := store.Snapshot()
	assert.Empty(t, customers)
	assert.True(t, loadedAt.IsZero())
	assert.Zero(t, gen)
	assert.False(t, store.Loaded())
}

func TestCustomerStore_ApplyInOrder(t *testing.T) {
	store := NewCustomerStore()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	gen := store.Begin()
	require.True(t, store.Apply(gen, []domain.Customer{{ID: 1}}, now))

	customers, loadedAt, applied := store.Snapshot()
	assert.Len(t, customers, 1)
	assert.Equal(t, now, loadedAt)
	assert.Equal(t, gen, applied)
	assert.True(t, store.Loaded())
}

func TestCustomerStore_DropsStaleResponse(t *testing.T) {
	store := NewCustomerStore()
	now := time.Now()

	older := store.Begin()
	newer := store.Begin()

	// the newer reload finishes first
	require.True(t, store.Apply(newer, []domain.Customer{{ID: 2}}, now))
	assert.False(t, store.Apply(older, []domain.Customer{{ID: 1}}, now))

	customers, _, gen := store.Snapshot()
	require.Len(t, customers, 1)
	assert.Equal(t, int64(2), customers[0].ID)
	assert.Equal(t, newer, gen)
}

func TestCustomerStore_SameGenerationAppliedOnce(t *testing.T) {
	store := NewCustomerStore()
	gen := store.Begin()

	assert.True(t, store.Apply(gen, []domain.Customer{{ID: 1}}, time.Now()))
	assert.False(t, store.Apply(gen, []domain.Customer{{ID: 9}}, time.Now()))
}

func TestCustomerStore_SnapshotIsACopy(t *testing.T) {
	store := NewCustomerStore()
	store.Apply(store.Begin(), []domain.Customer{{ID: 1, Name: "Asha"}}, time.Now())

	customers, _, _ := store.Snapshot()
	customers[0].Name = "changed"

	again, _, _ := store.Snapshot()
	assert.Equal(t, "Asha", again[0].Name)
}

func TestCustomerStore_Find(t *testing.T) {
	store := NewCustomerStore()
	store.Apply(store.Begin(), []domain.Customer{{ID: 1}, {ID: 5, Name: "Ravi"}}, time.Now())

	c, ok := store.Find(5)
	require.True(t, ok)
	assert.Equal(t, "Ravi", c.Name)

	_, ok = store.Find(42)
	assert.False(t, ok)
}

func TestCustomerStore_ConcurrentReloads(t *testing.T) {
	store := NewCustomerStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen := store.Begin()
			store.Apply(gen, []domain.Customer{{ID: int64(gen)}}, time.Now())
			store.Snapshot()
		}()
	}
	wg.Wait()

	customers, _, gen := store.Snapshot()
	require.Len(t, customers, 1)
	// the last issued generation always ends up applied
	assert.Equal(t, uint64(50), gen)
	assert.Equal(t, int64(50), customers[0].ID)
}
