//go:build linux

package shm_test

import (
	"edge-driver/internal/shm"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) int {
	for range 100 {
		key := 0x5e000000 + rand.IntN(0xffff)
		if !shm.Exists(key) {
			return key
		}
	}
	t.Fatal("unable to find a free shared memory key")
	return 0
}

func TestAcquireWriteRelease(t *testing.T) {
	key := testKey(t)
	payload := []byte("0123456789abcdef")

	seg, err := shm.Acquire(key, len(payload))
	require.NoError(t, err)
	defer shm.Release(seg)

	assert.True(t, shm.Exists(key))
	assert.Equal(t, key, seg.Key())
	assert.Equal(t, len(payload), seg.Size())
	assert.False(t, seg.Attached())

	require.NoError(t, shm.Write(seg, payload))
	assert.True(t, seg.Attached())
	assert.Equal(t, shm.ReadOnly, seg.Mode())

	read, err := shm.Read(seg.ID(), 0, len(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, read)

	part, err := shm.Read(seg.ID(), 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("4567"), part)

	shm.Release(seg)
	assert.False(t, seg.Attached())
	assert.True(t, seg.Released())
	assert.False(t, shm.Exists(key))
}

func TestWriteTwiceReattaches(t *testing.T) {
	key := testKey(t)

	seg, err := shm.Acquire(key, 4)
	require.NoError(t, err)
	defer shm.Release(seg)

	require.NoError(t, shm.Write(seg, []byte{1, 2, 3, 4}))
	require.NoError(t, shm.Write(seg, []byte{5, 6, 7, 8}))

	read, err := shm.Read(seg.ID(), 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 6, 7, 8}, read)
}

func TestAcquireOpensExistingSegment(t *testing.T) {
	key := testKey(t)

	first, err := shm.Acquire(key, 64)
	require.NoError(t, err)
	defer shm.Release(first)

	second, err := shm.Acquire(key, 64)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())
}

func TestAcquireSizeMismatch(t *testing.T) {
	key := testKey(t)

	seg, err := shm.Acquire(key, 64)
	require.NoError(t, err)
	defer shm.Release(seg)

	_, err = shm.Acquire(key, 128)
	assert.ErrorIs(t, err, shm.ErrSegment)

	_, err = shm.Acquire(key, 32)
	assert.ErrorIs(t, err, shm.ErrSegment)
}

func TestWriteRejectsWrongPayloadSize(t *testing.T) {
	key := testKey(t)

	seg, err := shm.Acquire(key, 8)
	require.NoError(t, err)
	defer shm.Release(seg)

	assert.ErrorIs(t, shm.Write(seg, []byte{1, 2, 3}), shm.ErrSegment)
}

func TestReleaseIsIdempotent(t *testing.T) {
	key := testKey(t)

	seg, err := shm.Acquire(key, 16)
	require.NoError(t, err)
	require.NoError(t, shm.Write(seg, make([]byte, 16)))

	shm.Release(seg)
	assert.NotPanics(t, func() { shm.Release(seg) })
	assert.False(t, shm.Exists(key))

	assert.ErrorIs(t, shm.Write(seg, make([]byte, 16)), shm.ErrSegment)

	shm.Release(nil)
}

func TestAcquireInvalidSize(t *testing.T) {
	_, err := shm.Acquire(testKey(t), 0)
	assert.ErrorIs(t, err, shm.ErrSegment)
}
