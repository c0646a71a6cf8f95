package utils

import (
	"fmt"
	"sync"
)

// MutexMap hands out one mutex per key. Entries are dropped once nobody holds
// or waits on them, so at most maxKeys distinct keys are live at a time.
type MutexMap[K comparable] struct {
	edit    sync.Mutex
	waiters map[K]int
	mutexes map[K]*sync.Mutex
	maxKeys int
}

func NewMutexMap[K comparable](maxKeys int) *MutexMap[K] {
	return &MutexMap[K]{
		waiters: make(map[K]int),
		mutexes: make(map[K]*sync.Mutex),
		maxKeys: maxKeys,
	}
}

func (m *MutexMap[K]) Lock(key K) error {
	m.edit.Lock()

	mu, ok := m.mutexes[key]
	if !ok {
		if len(m.mutexes) >= m.maxKeys {
			m.edit.Unlock()
			return fmt.Errorf("mutex map is full (%d keys)", m.maxKeys)
		}
		mu = &sync.Mutex{}
		m.mutexes[key] = mu
	}
	m.waiters[key]++
	m.edit.Unlock()

	mu.Lock()
	return nil
}

func (m *MutexMap[K]) Unlock(key K) error {
	m.edit.Lock()
	defer m.edit.Unlock()

	mu, ok := m.mutexes[key]
	if !ok {
		return fmt.Errorf("key %v is not locked", key)
	}
	mu.Unlock()

	m.waiters[key]--
	if m.waiters[key] == 0 {
		delete(m.mutexes, key)
		delete(m.waiters, key)
	}
	return nil
}

// Len is the number of keys currently held or waited on.
func (m *MutexMap[K]) Len() int {
	m.edit.Lock()
	defer m.edit.Unlock()
	return len(m.mutexes)
}
