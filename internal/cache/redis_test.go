package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibukun5588/problem-set-1/internal/config"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	require.NoError(t, InitRedis(&config.Config{}))
	assert.False(t, Enabled())

	ctx := context.Background()
	require.NoError(t, SetJSON(ctx, "sim:actor:nm1", []int{1, 2}, 60))

	var out []int
	ok, err := GetJSON(ctx, "sim:actor:nm1", &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.NoError(t, Close())
}
