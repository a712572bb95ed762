package xpferr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreiMuntea/xpf/xpferr"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := xpferr.New(xpferr.PoolRunningDown, "pool.Submit")
	assert.True(t, errors.Is(err, xpferr.ErrPoolRunningDown))
	assert.False(t, errors.Is(err, xpferr.ErrPoolNotRunning))
	assert.False(t, errors.Is(err, xpferr.ErrBusRunningDown))
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := xpferr.Wrap(xpferr.ResourceUnavailable, "signal.New", cause)
	require.ErrorIs(t, err, cause)
	assert.True(t, errors.Is(err, xpferr.ErrResourceUnavailable))
}

func TestError_ErrorStringIncludesOpAndKind(t *testing.T) {
	err := xpferr.New(xpferr.InvalidArg, "bus.Unregister")
	assert.Contains(t, err.Error(), "bus.Unregister")
	assert.Contains(t, err.Error(), "invalid-arg")
}

func TestKind_StringUnknown(t *testing.T) {
	assert.Equal(t, "unknown", xpferr.Kind(0).String())
}
