package utils_test

import (
	"sync"
	"testing"
	"time"

	"edge-driver/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hold = 200 * time.Millisecond

func holdKey[K comparable](t *testing.T, m *utils.MutexMap[K], key K, wg *sync.WaitGroup) {
	defer wg.Done()
	if err := m.Lock(key); err != nil {
		t.Errorf("error locking key %v: %v", key, err)
		return
	}
	time.Sleep(hold)
	if err := m.Unlock(key); err != nil {
		t.Errorf("error unlocking key %v: %v", key, err)
	}
}

func TestMutexMap_SameKeyRunsSequentially(t *testing.T) {
	m := utils.NewMutexMap[int](10)

	var wg sync.WaitGroup
	wg.Add(2)
	start := time.Now()
	go holdKey(t, m, 41, &wg)
	go holdKey(t, m, 41, &wg)
	wg.Wait()

	assert.GreaterOrEqual(t, time.Since(start), 2*hold)
	assert.Equal(t, 0, m.Len())
}

func TestMutexMap_DifferentKeysRunConcurrently(t *testing.T) {
	m := utils.NewMutexMap[int](10)

	var wg sync.WaitGroup
	wg.Add(2)
	start := time.Now()
	go holdKey(t, m, 41, &wg)
	go holdKey(t, m, 42, &wg)
	wg.Wait()

	assert.Less(t, time.Since(start), hold+hold/2)
}

func TestMutexMap_Full(t *testing.T) {
	m := utils.NewMutexMap[string](1)

	require.NoError(t, m.Lock("a"))
	assert.Error(t, m.Lock("b"))
	require.NoError(t, m.Unlock("a"))
	assert.NoError(t, m.Lock("b"))
}

func TestMutexMap_UnlockUnknownKey(t *testing.T) {
	m := utils.NewMutexMap[string](10)
	assert.Error(t, m.Unlock("missing"))
}
