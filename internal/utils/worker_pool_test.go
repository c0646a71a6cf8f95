package utils_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"edge-driver/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInPool(t *testing.T) {
	inputs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	results := utils.RunInPool(inputs, 4, func(i int) (string, error) {
		if i%4 == 3 {
			time.Sleep(time.Duration(10-i) * time.Millisecond)
			return "", errors.New("odd one out")
		}
		return fmt.Sprintf("%d-%d", i, i), nil
	})

	require.Len(t, results, 10)
	failed := 0
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		if r.Error != nil {
			failed++
			continue
		}
		assert.Equal(t, fmt.Sprintf("%d-%d", i, i), r.Value)
	}
	assert.Equal(t, 2, failed)
}

func TestRunInPoolEmpty(t *testing.T) {
	results := utils.RunInPool(nil, 4, func(i int) (int, error) { return i, nil })
	assert.Empty(t, results)
}
